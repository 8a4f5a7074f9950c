package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/calc/internal/events"
)

func TestUpdateCommandEventSetsLastCommand(t *testing.T) {
	m := newModel("run-1")
	ev := &events.CommandEvent{BaseEvent: events.NewEvent(events.EventCommandDispatch, "run-1"), Command: "add"}

	next, _ := m.Update(eventMsg{ev: ev})
	got := next.(model)
	if got.lastCommand != "add" {
		t.Fatalf("lastCommand = %q, want %q", got.lastCommand, "add")
	}
	if len(got.log) != 1 {
		t.Fatalf("log length = %d, want 1", len(got.log))
	}
}

func TestUpdateProcessCrashRecordsDetail(t *testing.T) {
	m := newModel("run-1")
	ev := &events.ProcessEvent{BaseEvent: events.NewEvent(events.EventProcessCrash, "run-1"), Detail: "malformed number"}

	next, _ := m.Update(eventMsg{ev: ev})
	got := next.(model)
	if got.crashed != "malformed number" {
		t.Fatalf("crashed = %q, want %q", got.crashed, "malformed number")
	}
}

func TestUpdateRunDoneQuits(t *testing.T) {
	m := newModel("run-1")
	next, cmd := m.Update(runDoneMsg{exited: true, err: nil})
	got := next.(model)
	if !got.done {
		t.Fatalf("expected done to be true")
	}
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
}

func TestUpdateRunDoneWithErrorAppendsLine(t *testing.T) {
	m := newModel("run-1")
	next, _ := m.Update(runDoneMsg{exited: false, err: errors.New("boom")})
	got := next.(model)
	if len(got.log) != 1 {
		t.Fatalf("log length = %d, want 1", len(got.log))
	}
}

func TestUpdateWindowSizeMsg(t *testing.T) {
	m := newModel("run-1")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := next.(model)
	if got.width != 80 || got.height != 24 {
		t.Fatalf("got %dx%d, want 80x24", got.width, got.height)
	}
}

func TestAppendLineCapsAtMaxLogLines(t *testing.T) {
	m := newModel("run-1")
	for i := 0; i < maxLogLines+10; i++ {
		m = m.appendLine("line")
	}
	if len(m.log) != maxLogLines {
		t.Fatalf("log length = %d, want %d", len(m.log), maxLogLines)
	}
}
