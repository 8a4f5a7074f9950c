// Package codec implements the binary framing for a persisted SessionState
// snapshot: a fixed magic value and version byte, followed by each field as
// a length-prefixed record in a fixed order. The scheme is self-describing
// enough to detect truncation and unknown versions but makes no claim of
// compatibility across builds.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// magic identifies a calculator session snapshot.
var magic = [4]byte{'c', 'c', 'a', 'l'}

// formatVersion is the current snapshot format version.
const formatVersion byte = 1

// ErrCorruptState is returned by Decode when the blob is truncated,
// carries the wrong magic value, or declares an unknown format version.
var ErrCorruptState = errors.New("codec: corrupt state")

// Snapshot is the wire-level shape of a persisted session: the exact set of
// fields the codec round-trips. Callers translate to/from their own
// SessionState type at the boundary.
type Snapshot struct {
	LoadedQueries    []string
	QueriesSoFar     []string
	LinesToSkip      uint64
	LinesSoFar       uint64
	HasLastRandom    bool
	LastRandomNumber int64
}

// Encode serializes a Snapshot to its binary framing.
func Encode(s Snapshot) []byte {
	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(formatVersion)

	writeStrings(&buf, s.LoadedQueries)
	writeStrings(&buf, s.QueriesSoFar)
	writeUint64(&buf, s.LinesToSkip)
	writeUint64(&buf, s.LinesSoFar)

	if s.HasLastRandom {
		buf.WriteByte(1)
		writeInt64(&buf, s.LastRandomNumber)
	} else {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

// Decode parses a binary blob produced by Encode. An empty blob is not a
// valid Snapshot; callers treat an empty blob as "no snapshot yet" before
// calling Decode.
func Decode(data []byte) (Snapshot, error) {
	r := bytes.NewReader(data)

	var gotMagic [4]byte
	if _, err := r.Read(gotMagic[:]); err != nil || gotMagic != magic {
		return Snapshot{}, ErrCorruptState
	}

	version, err := r.ReadByte()
	if err != nil {
		return Snapshot{}, ErrCorruptState
	}
	if version != formatVersion {
		return Snapshot{}, fmt.Errorf("%w: unknown version %d", ErrCorruptState, version)
	}

	var s Snapshot

	s.LoadedQueries, err = readStrings(r)
	if err != nil {
		return Snapshot{}, err
	}
	s.QueriesSoFar, err = readStrings(r)
	if err != nil {
		return Snapshot{}, err
	}
	s.LinesToSkip, err = readUint64(r)
	if err != nil {
		return Snapshot{}, err
	}
	s.LinesSoFar, err = readUint64(r)
	if err != nil {
		return Snapshot{}, err
	}

	hasLastRandom, err := r.ReadByte()
	if err != nil {
		return Snapshot{}, ErrCorruptState
	}
	switch hasLastRandom {
	case 0:
		s.HasLastRandom = false
	case 1:
		s.HasLastRandom = true
		s.LastRandomNumber, err = readInt64(r)
		if err != nil {
			return Snapshot{}, err
		}
	default:
		return Snapshot{}, ErrCorruptState
	}

	if r.Len() != 0 {
		return Snapshot{}, fmt.Errorf("%w: trailing bytes", ErrCorruptState)
	}

	return s, nil
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	buf.Write(tmp[:])
}

func writeInt64(buf *bytes.Buffer, v int64) {
	writeUint64(buf, uint64(v))
}

func writeString(buf *bytes.Buffer, s string) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(len(s)))
	buf.Write(tmp[:])
	buf.WriteString(s)
}

func writeStrings(buf *bytes.Buffer, ss []string) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(len(ss)))
	buf.Write(tmp[:])
	for _, s := range ss {
		writeString(buf, s)
	}
}

func readUint64(r *bytes.Reader) (uint64, error) {
	var tmp [8]byte
	if _, err := readFull(r, tmp[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(tmp[:]), nil
}

func readInt64(r *bytes.Reader) (int64, error) {
	v, err := readUint64(r)
	return int64(v), err
}

func readString(r *bytes.Reader) (string, error) {
	var tmp [4]byte
	if _, err := readFull(r, tmp[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint32(tmp[:])
	// Guard against a corrupt length claiming more data than remains.
	if uint64(n) > uint64(r.Len()) {
		return "", ErrCorruptState
	}
	data := make([]byte, n)
	if _, err := readFull(r, data); err != nil {
		return "", err
	}
	return string(data), nil
}

func readStrings(r *bytes.Reader) ([]string, error) {
	var tmp [4]byte
	if _, err := readFull(r, tmp[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(tmp[:])
	// Guard against a corrupt count far larger than the remaining data could hold.
	if uint64(n) > uint64(r.Len()) {
		return nil, ErrCorruptState
	}
	out := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func readFull(r *bytes.Reader, buf []byte) (int, error) {
	n, err := r.Read(buf)
	if err != nil || n != len(buf) {
		return n, ErrCorruptState
	}
	return n, nil
}
