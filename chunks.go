package seqarr

import "iter"

// Chunks splits seq into successive slices of exactly length n. Every
// chunk is freshly allocated and safe to retain. Only the final chunk
// can carry padding: if the source ends partway through a group, the
// padding generator supplies the remaining slots. A source whose length
// is a multiple of n — including an empty one, which produces no chunks
// at all — is never padded.
//
// The returned sequence is lazy, forward-only and single-use. Breaking
// out of the loop is always safe and releases the source.
//
// Chunks panics if n is less than 1.
func Chunks[T any](seq iter.Seq[T], n int, padding func() T) iter.Seq[[]T] {
	if n < 1 {
		panic("seqarr: chunk size must be at least 1")
	}
	return func(yield func([]T) bool) {
		next, stop := iter.Pull(seq)
		defer stop()
		for {
			chunk, _, state := TakePartial(next, n, padding)
			if state == Empty {
				return
			}
			if !yield(chunk) {
				return
			}
			if state == Partial {
				// the source is exhausted; the next round would
				// report Empty
				return
			}
		}
	}
}

// ChunksDefault is Chunks with zero-value padding.
func ChunksDefault[T any](seq iter.Seq[T], n int) iter.Seq[[]T] {
	return Chunks(seq, n, func() (zero T) { return })
}
