package cql

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// InvalidQuery reports an empty or unparseable query string. The scanner is
// never invoked when this error is returned.
type InvalidQuery struct {
	Message string
	Pos     *lexer.Position
}

func (e *InvalidQuery) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("invalid query at %s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("invalid query: %s", e.Message)
}

// InvalidRegex reports a VALUE string that does not compile as a regular
// expression.
type InvalidRegex struct {
	Pattern string
	Err     error
}

func (e *InvalidRegex) Error() string {
	return fmt.Sprintf("invalid regex %q: %v", e.Pattern, e.Err)
}

func (e *InvalidRegex) Unwrap() error { return e.Err }

// MalformedPredicate indicates an internal contract violation, such as a
// Simple predicate missing its operator. It signals a programming error in
// this package, not a caller mistake.
type MalformedPredicate struct {
	Detail string
}

func (e *MalformedPredicate) Error() string {
	return fmt.Sprintf("malformed predicate: %s", e.Detail)
}

// MissingAnnotation indicates a corpus token does not carry an attribute a
// query predicate references. Outside Or alternatives this is logged and
// treated as a predicate miss; it is never returned from Match/FindAll.
type MissingAnnotation struct {
	Attr string
}

func (e *MissingAnnotation) Error() string {
	return fmt.Sprintf("missing annotation: %s", e.Attr)
}

// InvalidArgument indicates the scanner was invoked with a mode other than
// Match or Find.
type InvalidArgument struct {
	Detail string
}

func (e *InvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Detail)
}
