package regexlib

import "fmt"

// SyntaxError reports malformed regex text: an unexpected token, an
// unterminated group, trailing input after a complete expression, or an
// escape naming a character outside the alphabet.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regexlib: syntax error at offset %d: %s", e.Offset, e.Message)
}

func syntaxErrorf(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// AssertionViolation marks a broken internal invariant, such as a
// handle combinator, Reverse or BuildNFA invoked on a null regex handle.
// These are programmer errors, not malformed input, and are raised with
// panic rather than returned as error.
type AssertionViolation struct {
	Message string
}

func (e *AssertionViolation) Error() string {
	return "regexlib: assertion violation: " + e.Message
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(&AssertionViolation{Message: fmt.Sprintf(format, args...)})
	}
}
