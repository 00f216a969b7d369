package seqarr

import "iter"

// TakeDefault collects up to n elements from a live pull source into a
// new slice of length n, leaving any unfilled slots at the zero value.
// It never fails: a short source is padded, a longer one is simply left
// with its remaining elements unread.
func TakeDefault[T any](next func() (T, bool), n int) []T {
	buf := make([]T, n)
	fill(buf, next) // unfilled slots already hold the zero value
	return buf
}

// TakeDefaultInto fills dst from a live pull source and zeroes every
// slot the source did not reach. It reports how many elements came
// from the source.
func TakeDefaultInto[T any](dst []T, next func() (T, bool)) int {
	k := fill(dst, next)
	clear(dst[k:])
	return k
}

// TakePad is TakeDefault with a caller-supplied padding value in place
// of the zero value. The pad value is copied into each unfilled slot.
func TakePad[T any](next func() (T, bool), n int, pad T) []T {
	buf := make([]T, n)
	k := fill(buf, next)
	for i := k; i < n; i++ {
		buf[i] = pad
	}
	return buf
}

// TakePadInto fills dst from a live pull source, writing pad into every
// slot the source did not reach. It reports how many elements came
// from the source.
func TakePadInto[T any](dst []T, next func() (T, bool), pad T) int {
	k := fill(dst, next)
	for i := k; i < len(dst); i++ {
		dst[i] = pad
	}
	return k
}

// ToDefault consumes seq into a slice of exactly n elements, padding a
// short sequence with zero values. A sequence longer than n yields a
// *TooLongError.
func ToDefault[T any](seq iter.Seq[T], n int) ([]T, error) {
	next, stop := iter.Pull(seq)
	defer stop()
	buf := TakeDefault(next, n)
	if _, ok := next(); ok {
		return nil, &TooLongError{Want: n}
	}
	return buf, nil
}

// ToPad consumes seq into a slice of exactly n elements, padding a
// short sequence with pad. A sequence longer than n yields a
// *TooLongError.
func ToPad[T any](seq iter.Seq[T], n int, pad T) ([]T, error) {
	next, stop := iter.Pull(seq)
	defer stop()
	buf := TakePad(next, n, pad)
	if _, ok := next(); ok {
		return nil, &TooLongError{Want: n}
	}
	return buf, nil
}
