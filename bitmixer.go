package automaton

// Golden ratio bit mixer.
const PHI_C64 = uint64(0x9e3779b97f4a7c15)

// MurmurHash3 64-bit finalization step
func mix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// mixSequence folds a sequence of small integers into one hash, order-sensitive.
func mixSequence(values []int) uint64 {
	h := uint64(len(values)) * PHI_C64
	for _, v := range values {
		h = mix64(h ^ uint64(v))
	}
	return h
}
