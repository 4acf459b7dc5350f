// Package tt implements the transposition table: a fixed-size,
// always-replace cache of prior search results keyed by position hash.
package tt

import (
	"unsafe"

	"github.com/pica-engine/pica/internal/chessboard"
)

// EntryType classifies the value stored in an Entry.
type EntryType uint8

const (
	// NoEntry marks a slot that has never been written, or has been
	// cleared; it is never reported as a hit.
	NoEntry EntryType = iota
	Exact
	LowerBound
	UpperBound
)

// entrySize is the size in bytes of one Entry, used to derive the table
// length from a megabyte budget.
var entrySize = int(unsafe.Sizeof(Entry{}))

// Entry is one transposition table slot.
type Entry struct {
	Key   uint64
	Depth uint8
	Type  EntryType
	Value int32
	Move  chessboard.Move
}

// Table is a fixed-size, open-addressed, always-replace transposition
// table. Replacement is unconditional: spec.md deliberately trades
// accuracy on deep entries for implementation simplicity, so there is no
// depth- or age-based quality comparison here (contrast the teacher's
// epoch/quality replacement in pkg/search/tt/table.go, dropped per
// DESIGN.md).
type Table struct {
	entries []Entry
}

// New allocates a table sized for the given megabyte budget:
// n_entries = mb * 2^20 / sizeof(Entry).
func New(mb int) *Table {
	if mb < 1 {
		mb = 1
	}
	n := (mb * 1024 * 1024) / entrySize
	if n < 1 {
		n = 1
	}
	return &Table{entries: make([]Entry, n)}
}

// Resize reallocates the table for a new megabyte budget. Prior contents
// are discarded, matching spec.md §6.1's `setoption name Hash` contract
// ("reallocate TT").
func (t *Table) Resize(mb int) {
	*t = *New(mb)
}

// Clear zeroes every entry, used on `ucinewgame`.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len reports the number of entries the table holds.
func (t *Table) Len() int {
	return len(t.entries)
}

// index computes key mod n_entries.
func (t *Table) index(key uint64) uint64 {
	return key % uint64(len(t.entries))
}

// Set writes entry unconditionally at its index: entries[key mod n] =
// entry (always-replace).
func (t *Table) Set(entry Entry) {
	t.entries[t.index(entry.Key)] = entry
}

// Get returns the entry at key's index, and whether it should be
// consulted as a hit: the slot's key must match the probe key and its
// type must not be NoEntry (an Empty entry is never a hit, and a key
// mismatch is treated as a miss, Zobrist collisions accepted as noise
// per spec.md §3).
func (t *Table) Get(key uint64) (Entry, bool) {
	e := t.entries[t.index(key)]
	return e, e.Type != NoEntry && e.Key == key
}

// MateThreshold is the absolute score above which a value is considered
// a mate score (see spec.md §3: INF = 10_000, mate scores are any
// |s| >= INF - 255).
const MateThreshold = 10_000 - 255

// StoreValue adjusts value for storage: mate scores are ply-relative at
// the node that produced them, so they are shifted to be root-relative
// (absolute) before being written to the table, per spec.md §9.
func StoreValue(value int32, ply int) int32 {
	switch {
	case value >= MateThreshold:
		return value + int32(ply)
	case value <= -MateThreshold:
		return value - int32(ply)
	default:
		return value
	}
}

// ProbeValue adjusts a stored value back to being relative to the
// current node's ply, inverting StoreValue.
func ProbeValue(value int32, ply int) int32 {
	switch {
	case value >= MateThreshold:
		return value - int32(ply)
	case value <= -MateThreshold:
		return value + int32(ply)
	default:
		return value
	}
}
