package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"

	"github.com/npratt/calc/internal/events"
)

// TestDashboardLifecycleSmoke runs the full bubbletea program lifecycle
// headlessly: start, receive interpreter events, and quit cleanly when the
// wrapped run finishes.
func TestDashboardLifecycleSmoke(t *testing.T) {
	m := newModel("run-lifecycle-test")

	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(eventMsg{ev: &events.CommandEvent{
		BaseEvent: events.NewEvent(events.EventCommandDispatch, "run-lifecycle-test"),
		Command:   "add",
	}})
	tm.Send(eventMsg{ev: &events.StateEvent{
		BaseEvent: events.NewEvent(events.EventStateLiveWrite, "run-lifecycle-test"),
		Line:      "5",
	}})

	tm.Send(runDoneMsg{exited: true})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(model)
	if !ok {
		t.Fatalf("FinalModel returned %T, want model", fm)
	}
	if !final.done {
		t.Error("expected model to be done after runDoneMsg")
	}
	if final.lastCommand != "add" {
		t.Errorf("lastCommand = %q, want %q", final.lastCommand, "add")
	}

	out := tm.FinalOutput(t, teatest.WithFinalTimeout(5*time.Second))
	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(out)
	if !strings.Contains(buf.String(), "calc") {
		t.Error("expected output to contain the dashboard header")
	}
}
