package console

import "errors"

// ErrInputClosed indicates the input stream reached its end.
var ErrInputClosed = errors.New("console: input closed")

// ReadError wraps a failure of the underlying reader.
type ReadError struct {
	Prompt  string
	Wrapped error
}

func (e *ReadError) Error() string {
	return "console: read failed: " + e.Wrapped.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Wrapped
}

// ErrNotDecimal indicates numeric syntax outside plain decimal notation.
var ErrNotDecimal = errors.New("console: not a decimal number")
