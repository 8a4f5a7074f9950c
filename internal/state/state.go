// Package state implements SessionState, the sole persisted object of a
// calculator session, and its synchronous load/save/clear operations
// against a storage.Store. It is the durable half of the replay engine
// described alongside internal/console's replay-mediated wrapper.
package state

import (
	"fmt"

	"github.com/npratt/calc/internal/codec"
	"github.com/npratt/calc/internal/storage"
)

// SessionState is the sole entity persisted across restarts.
type SessionState struct {
	// LoadedQueries holds input lines recorded before a crash, drained by
	// the replay wrapper in order as it answers reads without touching the
	// raw console.
	LoadedQueries []string

	// QueriesSoFar accumulates input lines read live during the current
	// command in this run. It becomes LoadedQueries on the next load.
	QueriesSoFar []string

	// LinesToSkip counts output lines the wrapper must silently discard
	// before resuming real output.
	LinesToSkip uint64

	// LinesSoFar counts output lines emitted live during the current
	// command in this run.
	LinesSoFar uint64

	// HasLastRandomNumber is false on a fresh session until the interpreter's
	// bootstrap seeds LastRandomNumber with rng.DefaultSeed.
	HasLastRandomNumber bool
	LastRandomNumber    int64
}

// fresh returns a brand-new session: empty queues, zero counters, no seed.
func fresh() *SessionState {
	return &SessionState{
		LoadedQueries: []string{},
		QueriesSoFar:  []string{},
	}
}

// LoadOrDefault reads store's blob and reconstructs a SessionState per the
// load transform: a snapshot's QueriesSoFar becomes the new LoadedQueries,
// and its LinesSoFar becomes the new LinesToSkip, so the next run replays
// exactly what the crashed run had consumed and emitted. An empty or
// undecodable blob yields a fresh session rather than an error.
func LoadOrDefault(store storage.Store) (*SessionState, error) {
	data, err := store.Read()
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	if len(data) == 0 {
		return fresh(), nil
	}

	snap, err := codec.Decode(data)
	if err != nil {
		return fresh(), nil
	}

	s := &SessionState{
		LoadedQueries:       append([]string{}, snap.QueriesSoFar...),
		QueriesSoFar:        append([]string{}, snap.QueriesSoFar...),
		LinesToSkip:         snap.LinesSoFar,
		LinesSoFar:          snap.LinesSoFar,
		HasLastRandomNumber: snap.HasLastRandom,
		LastRandomNumber:    snap.LastRandomNumber,
	}
	return s, nil
}

// Save encodes the current state and overwrites store's blob.
func (s *SessionState) Save(store storage.Store) error {
	snap := codec.Snapshot{
		LoadedQueries:    s.LoadedQueries,
		QueriesSoFar:     s.QueriesSoFar,
		LinesToSkip:      s.LinesToSkip,
		LinesSoFar:       s.LinesSoFar,
		HasLastRandom:    s.HasLastRandomNumber,
		LastRandomNumber: s.LastRandomNumber,
	}
	if err := store.Write(codec.Encode(snap)); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	return nil
}

// ClearCommand resets the per-command replay window to empty/zero while
// preserving LastRandomNumber, then saves. Called at the boundary between
// commands so a fresh command never inherits a stale replay window.
func (s *SessionState) ClearCommand(store storage.Store) error {
	s.LoadedQueries = []string{}
	s.QueriesSoFar = []string{}
	s.LinesToSkip = 0
	s.LinesSoFar = 0
	return s.Save(store)
}

// ClearStorage overwrites the blob with zero bytes, the fresh-session
// marker used on clean exit.
func ClearStorage(store storage.Store) error {
	if err := store.Write([]byte{}); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}
