// Package history implements the short repetition ring used to detect
// threefold repetition during search.
package history

// ringSize is the number of hashes retained; sufficient for three
// repetitions of the most recent position within a 4-ply cycle. Longer
// repetition cycles are invisible to this ring — a known limitation
// spec.md preserves rather than fixes.
const ringSize = 9

// Ring holds the last ringSize position hashes. The zero value is not
// usable; construct with New. Ring is a plain value: copying it (as
// search does across sibling recursive branches) copies the whole
// history independently.
type Ring struct {
	hashes [ringSize]uint64
}

// New returns a Ring seeded with ringSize distinct sentinel values, so
// that an empty history never falsely reports a repetition.
func New() Ring {
	var r Ring
	for i := range r.hashes {
		r.hashes[i] = uint64(i + 1)
	}
	return r
}

// Push appends hash to the ring, shifting older entries left. It is a
// no-op if hash equals the newest entry already present, tolerating
// redundant protocol updates (e.g. repeated `position` commands for the
// same game state) idempotently.
func (r *Ring) Push(hash uint64) {
	if r.hashes[ringSize-1] == hash {
		return
	}
	copy(r.hashes[:ringSize-1], r.hashes[1:])
	r.hashes[ringSize-1] = hash
}

// Pushed returns a copy of r with hash pushed, leaving r untouched. This
// is how search threads independent histories down sibling recursive
// branches without aliasing a shared ring.
func (r Ring) Pushed(hash uint64) Ring {
	r.Push(hash)
	return r
}

// IsThreeRep reports whether the newest hash also appears in at least
// two other slots of the ring (three occurrences total), the contract
// used to treat a position as a forced repetition.
func (r Ring) IsThreeRep() bool {
	newest := r.hashes[ringSize-1]

	matches := 0
	for _, h := range r.hashes {
		if h == newest {
			matches++
		}
	}
	return matches >= 3
}
