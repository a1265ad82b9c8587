// Package ballset holds the circular collection of numbered balls that a draw
// extracts from.
package ballset

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize = errors.New("ball set size must be at least 1")
	ErrEmpty       = errors.New("ball set is empty")
)

// node is one ball in the ring. prev and next are arena indices, never
// pointers, so removed nodes can stay in place without being reachable.
type node struct {
	value int
	prev  int
	next  int
}

// Set is a ring of balls kept in an arena of nodes. Positions count forward
// from the origin node by following next links. Swapping exchanges values and
// leaves links alone; removing rewrites the two neighbouring links only.
type Set struct {
	nodes  []node
	origin int
	length int

	// index maps position to arena slot. It is rebuilt by walking the ring
	// after a removal.
	index []int
	stale bool
}

// New creates a set holding 1..n in order
func New(n int) (*Set, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	s := &Set{}
	s.Initialise(n)
	return s, nil
}

// Initialise resets the set to hold 1..n, with position 0 holding 1 and
// position n-1 holding n. n must not be negative.
func (s *Set) Initialise(n int) {
	s.nodes = make([]node, n)
	s.index = make([]int, n)
	for i := range s.nodes {
		s.nodes[i] = node{
			value: i + 1,
			prev:  (i - 1 + n) % n,
			next:  (i + 1) % n,
		}
		s.index[i] = i
	}
	s.origin = 0
	s.length = n
	s.stale = false
}

// Len returns the number of balls still in the set
func (s *Set) Len() int {
	return s.length
}

// ValueAt returns the value at pos. Positions wrap around the ring, so any
// integer is accepted while the set is non-empty. It panics on an empty set.
func (s *Set) ValueAt(pos int) int {
	return s.nodes[s.slot(pos)].value
}

// Swap exchanges the values at two positions. It panics on an empty set.
func (s *Set) Swap(a, b int) {
	i, j := s.slot(a), s.slot(b)
	s.nodes[i].value, s.nodes[j].value = s.nodes[j].value, s.nodes[i].value
}

// RemoveAt unlinks the ball at pos and returns its value. Positions after pos
// shift down by one.
func (s *Set) RemoveAt(pos int) (int, error) {
	if s.length == 0 {
		return 0, ErrEmpty
	}

	i := s.slot(pos)
	n := s.nodes[i]

	s.nodes[n.prev].next = n.next
	s.nodes[n.next].prev = n.prev
	s.length--

	if i == s.origin {
		s.origin = n.next
	}
	s.stale = true

	return n.value, nil
}

// Values returns the remaining values in position order
func (s *Set) Values() []int {
	out := make([]int, s.length)
	for pos := range out {
		out[pos] = s.ValueAt(pos)
	}
	return out
}

func (s *Set) slot(pos int) int {
	if s.length == 0 {
		panic("ballset: position lookup on an empty set")
	}
	if s.stale {
		s.reindex()
	}
	pos %= s.length
	if pos < 0 {
		pos += s.length
	}
	return s.index[pos]
}

func (s *Set) reindex() {
	s.index = s.index[:0]
	for i, slot := 0, s.origin; i < s.length; i++ {
		s.index = append(s.index, slot)
		slot = s.nodes[slot].next
	}
	s.stale = false
}
