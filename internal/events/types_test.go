package events

import "testing"

func TestNewEventStampsRunID(t *testing.T) {
	e := NewEvent(EventStateSave, "run-42")
	if e.RunID() != "run-42" {
		t.Errorf("got %q, want run-42", e.RunID())
	}
	if e.Type() != EventStateSave {
		t.Errorf("got %s, want %s", e.Type(), EventStateSave)
	}
	if e.Timestamp().IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestCommandEventSatisfiesEvent(t *testing.T) {
	var ev Event = &CommandEvent{BaseEvent: NewEvent(EventCommandDispatch, "run-1"), Command: "median"}
	if ev.Type() != EventCommandDispatch {
		t.Errorf("got %s, want %s", ev.Type(), EventCommandDispatch)
	}
}
