package engine

import "fmt"

// The engine reports every failure as one of five typed validation
// errors. All of them are permanent: retrying the same compilation with
// the same inputs fails identically.

// SyntaxError reports an equation that cannot be parsed: an illegal
// character, an unclosed or nested parenthesis, a repeated wildcard, a
// missing or duplicated "->", or reserved upper-case indices.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return "einshape: " + e.Msg }

func syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// ArityError reports an input whose rank does not match the LHS of the
// equation, accounting for wildcard flexibility.
type ArityError struct {
	Msg string
}

func (e *ArityError) Error() string { return "einshape: " + e.Msg }

func arityErrorf(format string, args ...any) error {
	return &ArityError{Msg: fmt.Sprintf(format, args...)}
}

// UnderspecifiedError reports a group with more than one index of
// unknown size, or a broadcast index with no specified size.
type UnderspecifiedError struct {
	Msg string
}

func (e *UnderspecifiedError) Error() string { return "einshape: " + e.Msg }

func underspecifiedErrorf(format string, args ...any) error {
	return &UnderspecifiedError{Msg: fmt.Sprintf(format, args...)}
}

// DivisibilityError reports a group whose known combined index size
// does not evenly divide the corresponding input axis size.
type DivisibilityError struct {
	Msg string
}

func (e *DivisibilityError) Error() string { return "einshape: " + e.Msg }

func divisibilityErrorf(format string, args ...any) error {
	return &DivisibilityError{Msg: fmt.Sprintf(format, args...)}
}

// ConsistencyError reports a fully specified group whose combined size
// mismatches the input axis, or an index that is not shared one-to-one
// between LHS and RHS.
type ConsistencyError struct {
	Msg string
}

func (e *ConsistencyError) Error() string { return "einshape: " + e.Msg }

func consistencyErrorf(format string, args ...any) error {
	return &ConsistencyError{Msg: fmt.Sprintf(format, args...)}
}
