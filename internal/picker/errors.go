package picker

import "fmt"

var (
	ErrMaskLength     = &maskErr{msg: "wrong length"}
	ErrMaskIncomplete = &maskErr{msg: "incomplete field"}
	ErrMaskDigits     = &maskErr{msg: "unexpected character"}
)

type maskErr struct{ msg string }

func (e *maskErr) Error() string { return e.msg }

// MaskError reports why a text could not be read back as a month/year.
type MaskError struct {
	Text string
	Err  error
}

func (e *MaskError) Error() string {
	return fmt.Sprintf("invalid mask %q: %v", e.Text, e.Err)
}

func (e *MaskError) Unwrap() error { return e.Err }
