// Package diagnostic defines the errors reported while validating an S-Java
// source file. Every failure, lexical, structural or semantic, is a single
// *Error carrying the Kind of problem and the line it was found on.
package diagnostic

import (
	"errors"
	"fmt"
)

// Kind identifies a class of validation failure
type Kind int

const (
	// Line-local errors
	UnrecognizedLine Kind = iota
	MalformedLine

	// Structural errors, raised by the first pass
	NestedMethod
	StatementOutsideMethod
	UnmatchedClosingBracket
	UnmatchedOpeningBracket

	// Semantic errors, raised by the second pass
	DuplicateDeclaration
	DuplicateMethod
	UndeclaredVariable
	UninitializedFinal
	ReassignedFinal
	TypeMismatch
	ArityMismatch
	UndeclaredMethod
	UninitializedVariable
)

var kindNames = [...]string{
	UnrecognizedLine:        "UnrecognizedLineError",
	MalformedLine:           "MalformedLineError",
	NestedMethod:            "NestedMethodError",
	StatementOutsideMethod:  "StatementOutsideMethodError",
	UnmatchedClosingBracket: "UnmatchedClosingBracketError",
	UnmatchedOpeningBracket: "UnmatchedOpeningBracketError",
	DuplicateDeclaration:    "DuplicateDeclarationError",
	DuplicateMethod:         "DuplicateMethodError",
	UndeclaredVariable:      "UndeclaredVariableError",
	UninitializedFinal:      "UninitializedFinalError",
	ReassignedFinal:         "ReassignedFinalError",
	TypeMismatch:            "TypeMismatchError",
	ArityMismatch:           "ArityMismatchError",
	UndeclaredMethod:        "UndeclaredMethodError",
	UninitializedVariable:   "UninitializedVariableError",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Structural reports whether the kind is raised by the first pass (including
// the line-local errors that the first pass surfaces)
func (k Kind) Structural() bool {
	return k <= UnmatchedOpeningBracket
}

// Error is a single validation failure
type Error struct {
	Kind Kind
	// 1-based line number, or 0 if the error is not tied to a line
	Line int
	// The offending source text, if any
	Text string
	Msg  string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	if e.Text == "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("line %d: %s: %s (%q)", e.Line, e.Kind, e.Msg, e.Text)
}

// Is matches any *Error of the same kind, so that
// errors.Is(err, &Error{Kind: TypeMismatch}) works as a kind test
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Errorf creates a new error of the given kind
func Errorf(kind Kind, line int, text string, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Line: line,
		Text: text,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the first *Error in err's chain
// The second result is false if err does not contain one
func KindOf(err error) (Kind, bool) {
	var d *Error
	if errors.As(err, &d) {
		return d.Kind, true
	}
	return 0, false
}

// At fills in the line information of err if it is an *Error that does not
// have any yet, and returns it. Other errors are returned unchanged
func At(err error, line int, text string) error {
	var d *Error
	if errors.As(err, &d) && d.Line == 0 {
		d.Line = line
		d.Text = text
	}
	return err
}
