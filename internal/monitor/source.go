package monitor

import (
	"github.com/npratt/calc/internal/codec"
	"github.com/npratt/calc/internal/storage"
)

// StatusSource combines the audit log's run-level view with the on-disk
// session snapshot's replay counters. It only ever reads the blob; the
// replay-mediated console stays the sole writer.
type StatusSource struct {
	tailer *LogTailer
	store  storage.Store
}

// NewStatusSource builds the StatusProvider backing `calc status` and the
// HTTP surface.
func NewStatusSource(tailer *LogTailer, store storage.Store) *StatusSource {
	return &StatusSource{tailer: tailer, store: store}
}

// Status implements StatusProvider. An empty or undecodable snapshot leaves
// the replay counters at zero, the same way a fresh session would.
func (s *StatusSource) Status() (Status, error) {
	st, err := s.tailer.Status()
	if err != nil {
		return Status{}, err
	}

	data, err := s.store.Read()
	if err != nil {
		return Status{}, err
	}
	if len(data) == 0 {
		return st, nil
	}

	snap, err := codec.Decode(data)
	if err != nil {
		return st, nil
	}
	st.ReplayDepth = len(snap.QueriesSoFar)
	st.LinesToSkip = snap.LinesSoFar
	st.HasLastRandom = snap.HasLastRandom
	st.LastRandom = snap.LastRandomNumber
	return st, nil
}
