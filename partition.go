package automaton

import "slices"

var _ Hashable = &partitionKey{}

// partitionKey describes a state during one refinement round of minimization:
// its own class followed by the class of every destination, in transition order.
type partitionKey struct {
	classes []int
	hash    uint64
}

func newPartitionKey(classes []int) *partitionKey {
	return &partitionKey{classes: classes, hash: mixSequence(classes)}
}

func (k *partitionKey) Hash() uint64 {
	return k.hash
}

func (k *partitionKey) Equals(other Hashable) bool {
	o, ok := other.(*partitionKey)
	return ok && o.hash == k.hash && slices.Equal(o.classes, k.classes)
}

// partitionRound numbers keys in order of first appearance. It is reset
// between rounds.
type partitionRound struct {
	ids *HashMap[int]
}

func newPartitionRound(capacity int) *partitionRound {
	return &partitionRound{ids: NewHashMap[int](WithCapacity(capacity))}
}

// classOf returns the class id of key, assigning the next free id on first sight.
func (r *partitionRound) classOf(key *partitionKey) int {
	if id, ok := r.ids.Get(key); ok {
		return id
	}
	id := r.ids.Size()
	r.ids.Set(key, id)
	return id
}

func (r *partitionRound) reset() {
	r.ids.Clear()
}
