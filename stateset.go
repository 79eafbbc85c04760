package automaton

import (
	"math/bits"
)

var _ Hashable = StateSet{}

// StateSet is a set of at most MaxStates states of an automaton, one bit per
// state index. It identifies a state of the automaton built by subset
// construction.
type StateSet struct {
	mask   uint64
	start  bool
	accept bool
}

// SingletonStateSet returns the set holding only state.
func SingletonStateSet(state int, start, accept bool) StateSet {
	return StateSet{mask: 1 << uint(state), start: start, accept: accept}
}

// Union returns the union of both sets. The result contains an accept state if
// either operand does; it is never a start set.
func (s StateSet) Union(other StateSet) StateSet {
	return StateSet{
		mask:   s.mask | other.mask,
		accept: s.accept || other.accept,
	}
}

func (s StateSet) Contains(state int) bool {
	return s.mask&(1<<uint(state)) != 0
}

func (s StateSet) Empty() bool {
	return s.mask == 0
}

// Len returns the number of states in the set.
func (s StateSet) Len() int {
	return bits.OnesCount64(s.mask)
}

func (s StateSet) Mask() uint64 {
	return s.mask
}

func (s StateSet) IsStart() bool {
	return s.start
}

func (s StateSet) IsAccept() bool {
	return s.accept
}

// Members returns the state indices in ascending order.
func (s StateSet) Members() []int {
	members := make([]int, 0, s.Len())
	for m := s.mask; m != 0; m &= m - 1 {
		members = append(members, bits.TrailingZeros64(m))
	}
	return members
}

// Less orders sets by their masks.
func (s StateSet) Less(other StateSet) bool {
	return s.mask < other.mask
}

func (s StateSet) Hash() uint64 {
	return mix64(s.mask)
}

// Equals compares masks only: the flags are derived from the members.
func (s StateSet) Equals(other Hashable) bool {
	o, ok := other.(StateSet)
	return ok && o.mask == s.mask
}
