// Package seqarr collects a fixed number of elements from a sequence.
//
// Given a pull source or an iter.Seq of unknown length, the package
// materializes exactly the first n elements into a slice of length n,
// with a choice of policies for a source that runs short: fail with a
// precise error, pad with the zero value, pad with a constant, or pad
// lazily from a generator while reporting how much of the result came
// from the source. A chunking adaptor built on the padded fill splits a
// sequence into successive fixed-size groups.
//
// Go generics cannot carry an array length as a type parameter, so n is
// a runtime argument and results are slices of exactly length n. The
// Into variants fill caller-provided storage instead of allocating,
// which lets a true fixed array (passed as arr[:]) serve as the
// destination.
package seqarr
