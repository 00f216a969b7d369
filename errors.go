package seqarr

import "fmt"

// TooShortError reports that the source ran out after Got elements
// while Want were requested.
type TooShortError struct {
	Got  int
	Want int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("seqarr: sequence too short: got %d of %d elements", e.Got, e.Want)
}

// TooLongError reports that an exact-length conversion found at least
// one element left over after filling Want slots.
type TooLongError struct {
	Want int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("seqarr: sequence too long: more than %d elements", e.Want)
}
