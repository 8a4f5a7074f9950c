package console

import (
	"github.com/npratt/calc/internal/events"
	"github.com/npratt/calc/internal/state"
	"github.com/npratt/calc/internal/storage"
)

// ReplayConsole wraps a RawConsole and a shared *state.SessionState, so that
// ReadLine first drains previously-logged answers and WriteLine first skips
// previously-emitted output lines, saving a snapshot on every live
// interaction. It is the sole writer to storage during a session.
type ReplayConsole struct {
	raw   RawConsole
	store storage.Store
	state *state.SessionState

	router *events.Router
	runID  string
}

// New wraps raw with a replay window backed by st and persisted to store.
func New(raw RawConsole, store storage.Store, st *state.SessionState) *ReplayConsole {
	return &ReplayConsole{raw: raw, store: store, state: st}
}

// Observe mirrors every replay drain, live read, live write, and snapshot
// save to router, tagged with runID. A nil router disables emission; the
// observability plane is never required for correctness.
func (c *ReplayConsole) Observe(router *events.Router, runID string) {
	c.router = router
	c.runID = runID
}

// emit sends an event to the router if one is attached.
func (c *ReplayConsole) emit(event events.Event) {
	if c.router != nil {
		c.router.Emit(event)
	}
}

func (c *ReplayConsole) stateEvent(t events.EventType, line string) *events.StateEvent {
	return &events.StateEvent{
		BaseEvent:     events.NewEvent(t, c.runID),
		Line:          line,
		LoadedQueries: len(c.state.LoadedQueries),
		LinesToSkip:   int(c.state.LinesToSkip),
	}
}

// ReadLine dequeues a previously-logged answer if one is pending replay;
// otherwise it reads live from the raw console, records the answer, and
// saves before returning it.
func (c *ReplayConsole) ReadLine() (string, error) {
	if len(c.state.LoadedQueries) > 0 {
		line := c.state.LoadedQueries[0]
		c.state.LoadedQueries = c.state.LoadedQueries[1:]
		c.emit(c.stateEvent(events.EventStateReplayDrain, line))
		return line, nil
	}

	line, err := c.raw.ReadLine()
	if err != nil {
		return "", err
	}

	c.state.QueriesSoFar = append(c.state.QueriesSoFar, line)
	if err := c.state.Save(c.store); err != nil {
		return "", err
	}
	c.emit(c.stateEvent(events.EventStateLiveRead, line))
	c.emit(c.stateEvent(events.EventStateSave, ""))
	return line, nil
}

// WriteLine silently discards s if the replay window still owes a skip;
// otherwise it writes live, counts the write, and saves before returning.
func (c *ReplayConsole) WriteLine(s string) error {
	if c.state.LinesToSkip > 0 {
		c.state.LinesToSkip--
		return nil
	}

	if err := c.raw.WriteLine(s); err != nil {
		return err
	}

	c.state.LinesSoFar++
	if err := c.state.Save(c.store); err != nil {
		return err
	}
	c.emit(c.stateEvent(events.EventStateLiveWrite, s))
	c.emit(c.stateEvent(events.EventStateSave, ""))
	return nil
}
