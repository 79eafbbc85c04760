package automaton

// unionSorted merges two sorted, duplicate-free slices into a new one.
func unionSorted[S ~[]E, E any](a, b S, cmp func(E, E) int) S {
	result := make(S, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			result = append(result, a[i])
			i++
		case c > 0:
			result = append(result, b[j])
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	return append(result, b[j:]...)
}
