package seqarr

// State tells how much of a TakePartial result came from the source.
type State uint8

const (
	// Empty means the source was exhausted before the first slot; no
	// slice was built.
	Empty State = iota
	// Partial means the source ran out partway; trailing slots hold
	// padding.
	Partial
	// Full means every slot came from the source.
	Full
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Partial:
		return "Partial"
	case Full:
		return "Full"
	}
	return "Invalid"
}

// TakePartial collects up to n elements from a live pull source,
// padding any shortfall from a generator and reporting where the
// source-derived prefix ends:
//
//   - the source is exhausted before the first slot: (nil, 0, Empty),
//     padding is never called — true exhaustion stays observable and
//     produces no padding side effects;
//   - the source yields 0 < k < n elements: padding is called once per
//     remaining slot, in slot order, and the result is (buf, k,
//     Partial) with buf[k:] holding the generated values;
//   - the source fills all n slots: (buf, n, Full), padding is never
//     called and the source is not polled further.
//
// n == 0 reports Full with an empty slice and zero polls.
func TakePartial[T any](next func() (T, bool), n int, padding func() T) ([]T, int, State) {
	buf := make([]T, n)
	k := fill(buf, next)
	switch {
	case k == n:
		return buf, n, Full
	case k == 0:
		return nil, 0, Empty
	default:
		for i := k; i < n; i++ {
			buf[i] = padding()
		}
		return buf, k, Partial
	}
}
