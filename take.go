package seqarr

import "iter"

// fill writes successive values from next into dst and reports how many
// slots were written. It stops at the first exhausted poll and never
// polls more than len(dst) times.
func fill[T any](dst []T, next func() (T, bool)) int {
	for i := range dst {
		v, ok := next()
		if !ok {
			return i
		}
		dst[i] = v
	}
	return len(dst)
}

// Take collects the next n elements of a live pull source into a new
// slice of length n. If the source is exhausted first, Take returns a
// *TooShortError carrying how many elements it obtained. The source is
// never polled past element n, so it stays usable for further calls.
//
// Take panics if n is negative.
func Take[T any](next func() (T, bool), n int) ([]T, error) {
	buf := make([]T, n)
	if k := fill(buf, next); k < n {
		return nil, &TooShortError{Got: k, Want: n}
	}
	return buf, nil
}

// TakeInto fills dst from a live pull source without allocating, so a
// fixed array passed as arr[:] never leaves the caller's frame. If the
// source runs out first, the written prefix is cleared before the
// *TooShortError is returned; the slots past the prefix are not
// touched. On success every slot of dst is overwritten.
func TakeInto[T any](dst []T, next func() (T, bool)) error {
	if k := fill(dst, next); k < len(dst) {
		clear(dst[:k])
		return &TooShortError{Got: k, Want: len(dst)}
	}
	return nil
}

// To consumes seq and collects it into a slice of exactly n elements.
// A shorter sequence yields a *TooShortError. A longer one yields a
// *TooLongError: the n-element result was built but is deliberately
// discarded, keeping To all-or-nothing.
//
// To panics if n is negative.
func To[T any](seq iter.Seq[T], n int) ([]T, error) {
	next, stop := iter.Pull(seq)
	defer stop()
	buf, err := Take(next, n)
	if err != nil {
		return nil, err
	}
	if _, ok := next(); ok {
		return nil, &TooLongError{Want: n}
	}
	return buf, nil
}
