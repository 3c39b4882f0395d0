package squaremaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPartition_Identity verifies that a fresh partition maps every raw
// tree id to itself, and leaves out-of-range ids (including 0 = empty)
// untouched.
func TestPartition_Identity(t *testing.T) {
	p := newPartition(4)
	for id := 1; id <= 4; id++ {
		assert.Equal(t, id, p.find(id))
	}
	assert.Equal(t, 0, p.find(0))
	assert.Equal(t, 99, p.find(99))
	assert.Equal(t, 4, p.count())
}

// TestPartition_AbsorbDirection verifies the directed union: absorbing A
// into B keeps B as the canonical id, never the other way around.
func TestPartition_AbsorbDirection(t *testing.T) {
	p := newPartition(2)
	got := p.absorb(1, 2)
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, p.find(1))
	assert.Equal(t, 2, p.find(2))
	assert.Equal(t, 1, p.count())
}

// TestPartition_TransitiveChains verifies merge closure across chained
// merges: after 1→2 and 2→3, a lookup of raw id 1 resolves to 3.
func TestPartition_TransitiveChains(t *testing.T) {
	p := newPartition(3)
	p.absorb(1, 2)
	p.absorb(2, 3)
	assert.Equal(t, 3, p.find(1))
	assert.Equal(t, 3, p.find(2))
	assert.Equal(t, 1, p.count())
}

// TestPartition_AbsorbIntoMergedTarget verifies that absorbing into a
// raw id that was itself merged away lands on that id's canonical root.
func TestPartition_AbsorbIntoMergedTarget(t *testing.T) {
	p := newPartition(3)
	p.absorb(1, 2)
	got := p.absorb(3, 1) // 1 already resolves to 2
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, p.find(3))
}

// TestPartition_AbsorbSelfNoop verifies that merging a tree with itself
// (directly or through its canonical id) changes nothing.
func TestPartition_AbsorbSelfNoop(t *testing.T) {
	p := newPartition(2)
	p.absorb(1, 1)
	assert.Equal(t, 1, p.find(1))
	p.absorb(1, 2)
	p.absorb(2, 1) // both already canonicalize to 2
	assert.Equal(t, 2, p.find(1))
	assert.Equal(t, 2, p.find(2))
}
