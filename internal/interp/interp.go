// Package interp implements the command loop: add, median, rand, help, and
// exit, dispatched over a replay-mediated console and a SessionState.
package interp

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npratt/calc/internal/console"
	"github.com/npratt/calc/internal/events"
	"github.com/npratt/calc/internal/rng"
	"github.com/npratt/calc/internal/state"
	"github.com/npratt/calc/internal/storage"
)

// Interpreter runs the calculator's main loop over a replay-mediated
// console backed by a single SessionState and its storage.
type Interpreter struct {
	console *console.ReplayConsole
	state   *state.SessionState
	store   storage.Store

	router *events.Router
	runID  string
}

// New builds an Interpreter. c must already be wrapping store and st.
func New(c *console.ReplayConsole, st *state.SessionState, store storage.Store) *Interpreter {
	return &Interpreter{console: c, state: st, store: store}
}

// Observe mirrors every dispatch, completion, and storage reset to router,
// tagged with runID. A nil router disables emission.
func (i *Interpreter) Observe(router *events.Router, runID string) {
	i.router = router
	i.runID = runID
}

// emit sends an event to the router if one is attached.
func (i *Interpreter) emit(event events.Event) {
	if i.router != nil {
		i.router.Emit(event)
	}
}

func (i *Interpreter) commandEvent(t events.EventType, cmd string) *events.CommandEvent {
	return &events.CommandEvent{BaseEvent: events.NewEvent(t, i.runID), Command: cmd}
}

// Run drives the main loop to completion. It returns exited=true when the
// session ended via the exit command, or exited=false (with a nil err) when
// the raw console's input was exhausted. Any other error — most notably
// ErrMalformedNumber — is returned unwrapped so the caller can decide how to
// terminate the process.
func (i *Interpreter) Run() (exited bool, err error) {
	if !i.state.HasLastRandomNumber {
		i.state.HasLastRandomNumber = true
		i.state.LastRandomNumber = rng.DefaultSeed
	}

	for {
		line, err := i.console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		cmd := strings.TrimSpace(line)

		switch cmd {
		case "exit":
			i.emit(i.commandEvent(events.EventCommandDispatch, cmd))
			if err := state.ClearStorage(i.store); err != nil {
				return false, err
			}
			i.emit(&events.StateEvent{BaseEvent: events.NewEvent(events.EventStateClearStorage, i.runID)})
			return true, nil
		case "add":
			i.emit(i.commandEvent(events.EventCommandDispatch, cmd))
			err = i.add()
		case "median":
			i.emit(i.commandEvent(events.EventCommandDispatch, cmd))
			err = i.median()
		case "help":
			i.emit(i.commandEvent(events.EventCommandDispatch, cmd))
			err = i.help()
		case "rand":
			i.emit(i.commandEvent(events.EventCommandDispatch, cmd))
			err = i.rand()
		default:
			i.emit(i.commandEvent(events.EventCommandUnknown, cmd))
			err = i.console.WriteLine(msgUnknownCommand)
		}
		if err != nil {
			return false, err
		}

		if err := i.state.ClearCommand(i.store); err != nil {
			return false, err
		}
		i.emit(&events.StateEvent{BaseEvent: events.NewEvent(events.EventStateClearCommand, i.runID)})
		i.emit(i.commandEvent(events.EventCommandComplete, cmd))
	}
}

// readNumber reads a line via the wrapped console and parses it as a signed
// decimal integer. It is the sole source of ErrMalformedNumber.
func (i *Interpreter) readNumber() (int64, error) {
	line, err := i.console.ReadLine()
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(line)
	v, perr := parseInt(trimmed)
	if perr != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, trimmed)
	}
	return v, nil
}
