package automaton

import (
	"iter"
)

// Hashable is a key usable in HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash map keyed by Hashable values. It is not safe for
// concurrent use.
type HashMap[T any] struct {
	buckets    []*Entry[T]
	size       int
	mask       uint64
	emptyValue T
	loadFactor float64
}

// Entry is one key/value pair of a bucket chain.
type Entry[T any] struct {
	key   Hashable
	value T
	next  *Entry[T]
}

type optionsHashMap struct {
	capacity   int     // rounded up to a power of two
	loadFactor float64 // grow when size/buckets exceeds this, default 0.75
}

func newOptionsHashMap(opts ...OptionsHashMap) *optionsHashMap {
	options := &optionsHashMap{
		capacity:   1,
		loadFactor: 0.75,
	}

	for _, opt := range opts {
		opt(options)
	}

	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}
	options.capacity = realCap

	return options
}

type OptionsHashMap func(hashMap *optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.loadFactor = loadFactor
	}
}

// NewHashMap creates a map. The initial capacity is rounded up to a power of two.
func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := newOptionsHashMap(options...)

	return &HashMap[T]{
		buckets:    make([]*Entry[T], opt.capacity),
		mask:       uint64(opt.capacity - 1),
		loadFactor: opt.loadFactor,
	}
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	if e := m.find(key); e != nil {
		e.value = value
		return
	}

	m.link(&Entry[T]{key: key, value: value})
	m.size++
	if float64(m.size) > m.loadFactor*float64(len(m.buckets)) {
		m.resize()
	}
}

// Get returns the value stored under key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	return m.emptyValue, false
}

func (m *HashMap[T]) find(key Hashable) *Entry[T] {
	for e := m.buckets[key.Hash()&m.mask]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

// link pushes e at the head of its bucket.
func (m *HashMap[T]) link(e *Entry[T]) {
	index := e.key.Hash() & m.mask
	e.next = m.buckets[index]
	m.buckets[index] = e
}

// Delete removes key if present.
func (m *HashMap[T]) Delete(key Hashable) {
	index := key.Hash() & m.mask
	var prev *Entry[T]
	for e := m.buckets[index]; e != nil; prev, e = e, e.next {
		if e.key.Equals(key) {
			if prev == nil {
				m.buckets[index] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return
		}
	}
}

// Clear removes every entry, keeping the allocated buckets.
func (m *HashMap[T]) Clear() {
	clear(m.buckets)
	m.size = 0
}

// resize doubles the bucket array, relinking the existing entries.
func (m *HashMap[T]) resize() {
	old := m.buckets
	m.buckets = make([]*Entry[T], len(old)<<1)
	m.mask = uint64(len(m.buckets) - 1)

	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			m.link(e)
			e = next
		}
	}
}

// Size returns the number of entries.
func (m *HashMap[T]) Size() int {
	return m.size
}

// Iterator yields every entry in bucket order.
func (m *HashMap[T]) Iterator() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, bucket := range m.buckets {
			for e := bucket; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
