package interp

import (
	"errors"
	"io"
	"testing"

	"github.com/npratt/calc/internal/console"
	"github.com/npratt/calc/internal/events"
	"github.com/npratt/calc/internal/state"
	"github.com/npratt/calc/internal/storage"
)

// scriptedConsole replays a fixed list of input lines and records every
// write it's asked to perform.
type scriptedConsole struct {
	inputs []string
	writes []string
	reads  int
}

func (s *scriptedConsole) ReadLine() (string, error) {
	if s.reads >= len(s.inputs) {
		return "", io.EOF
	}
	line := s.inputs[s.reads]
	s.reads++
	return line, nil
}

func (s *scriptedConsole) WriteLine(line string) error {
	s.writes = append(s.writes, line)
	return nil
}

func newInterpreter(t *testing.T, inputs []string) (*Interpreter, *scriptedConsole, storage.Store) {
	t.Helper()
	store := storage.NewMemStore()
	st, err := state.LoadOrDefault(store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	raw := &scriptedConsole{inputs: inputs}
	rc := console.New(raw, store, st)
	return New(rc, st, store), raw, store
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestScenarioAAdd exercises the basic add command end to end.
func TestScenarioAAdd(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"add", "2", "3", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !equalStrings(raw.writes, []string{"5"}) {
		t.Fatalf("got writes=%v, want [5]", raw.writes)
	}
}

// TestScenarioBMedianEvenCount exercises median with a fractional mean.
func TestScenarioBMedianEvenCount(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"median", "4", "1", "2", "3", "4", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !equalStrings(raw.writes, []string{"2.5"}) {
		t.Fatalf("got writes=%v, want [2.5]", raw.writes)
	}
}

// TestScenarioCMedianOddCount exercises median with an odd element count.
func TestScenarioCMedianOddCount(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"median", "3", "10", "1", "100", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !equalStrings(raw.writes, []string{"10"}) {
		t.Fatalf("got writes=%v, want [10]", raw.writes)
	}
}

func TestMedianEvenCountWholeMean(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"median", "2", "2", "4", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !equalStrings(raw.writes, []string{"3"}) {
		t.Fatalf("got writes=%v, want [3]", raw.writes)
	}
}

func TestMedianZeroCount(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"median", "0", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !equalStrings(raw.writes, []string{"0"}) {
		t.Fatalf("got writes=%v, want [0]", raw.writes)
	}
}

// TestScenarioDRandFromFreshSeed checks the exact Park-Miller sequence from
// the default seed, including that a subsequent rand 1 in the same session
// continues the sequence rather than reseeding.
func TestScenarioDRandFromFreshSeed(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"rand", "3", "rand", "1", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"420", "7058940", "528003995", "760714561"}
	if !equalStrings(raw.writes, want) {
		t.Fatalf("got writes=%v, want %v", raw.writes, want)
	}
}

func TestRandZeroCountLeavesSeedUnchanged(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"rand", "0", "rand", "1", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !equalStrings(raw.writes, []string{"420"}) {
		t.Fatalf("got writes=%v, want [420]", raw.writes)
	}
}

// TestScenarioECrashMidAddResumes simulates a crash mid-add and checks that
// restarting replays the consumed input without re-reading the raw console.
func TestScenarioECrashMidAddResumes(t *testing.T) {
	store := storage.NewMemStore()

	st1, err := state.LoadOrDefault(store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	raw1 := &scriptedConsole{inputs: []string{"add", "2"}}
	rc1 := console.New(raw1, store, st1)
	if _, err := rc1.ReadLine(); err != nil {
		t.Fatalf("read 1: %v", err)
	}
	if _, err := rc1.ReadLine(); err != nil {
		t.Fatalf("read 2: %v", err)
	}
	// Crash: run 1 stops here.

	st2, err := state.LoadOrDefault(store)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	raw2 := &scriptedConsole{inputs: []string{"3", "exit"}}
	rc2 := console.New(raw2, store, st2)
	i2 := New(rc2, st2, store)

	if _, err := i2.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !equalStrings(raw2.writes, []string{"5"}) {
		t.Fatalf("got writes=%v, want [5] (same transcript as TestScenarioAAdd)", raw2.writes)
	}
	if raw2.reads != 2 {
		t.Fatalf("raw console consulted %d times, want 2 (\"3\" then \"exit\")", raw2.reads)
	}
}

// TestScenarioFUnknownCommand checks the unknown-command message.
func TestScenarioFUnknownCommand(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"foo", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"Такой команды нет, используйте help для списка команд"}
	if !equalStrings(raw.writes, want) {
		t.Fatalf("got writes=%v, want %v", raw.writes, want)
	}
}

func TestHelpSubLoop(t *testing.T) {
	i, raw, _ := newInterpreter(t, []string{"help", "add", "bogus", "end", "exit"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{
		"Укажите команду, для которой хотите посмотреть помощь",
		"Доступные команды: add, median, rand",
		"Чтобы выйти из режима помощи введите end",
		"Вычисляет сумму двух чисел",
		"Чтобы выйти из режима помощи введите end",
		"Такой команды нет",
		"Доступные команды: add, median, rand",
		"Чтобы выйти из режима помощи введите end",
	}
	if !equalStrings(raw.writes, want) {
		t.Fatalf("got writes=%v, want %v", raw.writes, want)
	}
}

func TestExitClearsStorage(t *testing.T) {
	i, _, store := newInterpreter(t, []string{"exit"})
	exited, err := i.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !exited {
		t.Fatalf("expected exited=true")
	}
	data, err := store.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty blob after exit, got %d bytes", len(data))
	}
}

func TestInputExhaustionEndsRunCleanly(t *testing.T) {
	i, _, _ := newInterpreter(t, []string{"add", "2", "3"})
	exited, err := i.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if exited {
		t.Fatalf("expected exited=false on input exhaustion")
	}
}

func TestMalformedNumberIsFatal(t *testing.T) {
	i, _, _ := newInterpreter(t, []string{"add", "not-a-number"})
	_, err := i.Run()
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("got %v, want ErrMalformedNumber", err)
	}
}

func TestObserveDistinguishesDispatchUnknownAndComplete(t *testing.T) {
	i, _, _ := newInterpreter(t, []string{"add", "2", "3", "foo", "exit"})

	router := events.NewRouter(64)
	defer router.Close()
	ch := router.Subscribe()
	i.Observe(router, "run-1")

	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	var dispatched, unknown, completed []string
	var clearCommands, clearStorage int
	for len(ch) > 0 {
		switch ev := (<-ch).(type) {
		case *events.CommandEvent:
			switch ev.Type() {
			case events.EventCommandDispatch:
				dispatched = append(dispatched, ev.Command)
			case events.EventCommandUnknown:
				unknown = append(unknown, ev.Command)
			case events.EventCommandComplete:
				completed = append(completed, ev.Command)
			}
		case *events.StateEvent:
			switch ev.Type() {
			case events.EventStateClearCommand:
				clearCommands++
			case events.EventStateClearStorage:
				clearStorage++
			}
		}
	}

	if !equalStrings(dispatched, []string{"add", "exit"}) {
		t.Errorf("dispatched = %v, want [add exit]", dispatched)
	}
	if !equalStrings(unknown, []string{"foo"}) {
		t.Errorf("unknown = %v, want [foo]", unknown)
	}
	if !equalStrings(completed, []string{"add", "foo"}) {
		t.Errorf("completed = %v, want [add foo]", completed)
	}
	if clearCommands != 2 {
		t.Errorf("clear_command events = %d, want 2", clearCommands)
	}
	if clearStorage != 1 {
		t.Errorf("clear_storage events = %d, want 1", clearStorage)
	}
}

func TestClearCommandEstablishesEmptyWindowBetweenCommands(t *testing.T) {
	i, _, store := newInterpreter(t, []string{"add", "2", "3", "median", "0"})
	if _, err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := store.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected a saved snapshot after ClearCommand, got empty blob")
	}
}
