package maxlen

import (
	"errors"
	"fmt"
)

// ErrLengthExceeded matches any *LengthExceeded via errors.Is.
var ErrLengthExceeded = errors.New("maxlen: length exceeded")

// LengthExceeded reports that a candidate value's logical length is over
// the bound it was checked against. It is the only error the checked
// constructors and Rebound return.
type LengthExceeded struct {
	Length  int
	Maximum int
}

func (e *LengthExceeded) Error() string {
	return fmt.Sprintf("length of %d exceeded (%d)", e.Length, e.Maximum)
}

// Is reports true for ErrLengthExceeded so callers can use errors.Is
// without holding the concrete type.
func (e *LengthExceeded) Is(target error) bool {
	return target == ErrLengthExceeded
}

// checkLen is the single runtime bound check behind every checked
// construction path.
func checkLen(length, max int) error {
	if length > max {
		return &LengthExceeded{Length: length, Maximum: max}
	}
	return nil
}
