package cli

import (
	"errors"
	"fmt"
)

var errNoSelection = errors.New("no month selected")

type flagError struct {
	flag  string
	value string
	err   error
}

func (e flagError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %v", e.flag, e.value, e.err)
}

func (e flagError) Unwrap() error { return e.err }

type unknownOpError struct {
	op string
}

func (e unknownOpError) Error() string {
	return fmt.Sprintf("unknown nav op: %q (expected year:N, month:N, prev, next or years)", e.op)
}
