// Package events defines the event taxonomy emitted by a running
// interpreter and the pub/sub plumbing ("the observability plane") that
// distributes them to an audit log and, optionally, a TUI.
package events

import "time"

// EventType identifies the category and nature of an event.
type EventType string

const (
	EventProcessStart    EventType = "process.start"
	EventProcessShutdown EventType = "process.shutdown"
	EventProcessCrash    EventType = "process.crash_fatal"

	EventStateLoad         EventType = "state.load"
	EventStateReplayDrain  EventType = "state.replay_drain"
	EventStateLiveRead     EventType = "state.live_read"
	EventStateLiveWrite    EventType = "state.live_write"
	EventStateSave         EventType = "state.save"
	EventStateClearCommand EventType = "state.clear_command"
	EventStateClearStorage EventType = "state.clear_storage"

	EventCommandDispatch EventType = "command.dispatch"
	EventCommandUnknown  EventType = "command.unknown"
	EventCommandComplete EventType = "command.complete"
)

// Source identifies which part of the system emitted an event. There is
// only ever one interpreter per run, so this is mostly useful once a log is
// merged across runs.
const SourceInterp = "interp"

// Event is the common interface satisfied by every emitted event.
type Event interface {
	Type() EventType
	Timestamp() time.Time
	RunID() string
}

// BaseEvent provides the fields shared by every event.
type BaseEvent struct {
	EventType EventType `json:"type"`
	Time      time.Time `json:"timestamp"`
	Run       string    `json:"run_id"`
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) RunID() string        { return e.Run }

// NewEvent creates a BaseEvent with the current time.
func NewEvent(eventType EventType, runID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Run: runID}
}

// ProcessEvent marks process-lifecycle milestones.
type ProcessEvent struct {
	BaseEvent
	Detail string `json:"detail,omitempty"`
}

// StateEvent marks a SessionState transition: a load, a live read/write, a
// save, or a reset.
type StateEvent struct {
	BaseEvent
	LoadedQueries int    `json:"loaded_queries,omitempty"`
	LinesToSkip   int    `json:"lines_to_skip,omitempty"`
	Line          string `json:"line,omitempty"`
}

// CommandEvent marks the interpreter's dispatch of one command line.
type CommandEvent struct {
	BaseEvent
	Command string `json:"command"`
}
