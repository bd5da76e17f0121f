package aggregate

// Integer is the set of integer kinds Sum accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Sum returns the arithmetic sum of values, visiting each element once in
// index order. A nil or empty slice sums to 0.
func Sum[E Integer](values []E) E {
	var total E
	for _, v := range values {
		total += v
	}
	return total
}
