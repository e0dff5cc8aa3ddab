package pick

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a document has no boxes file.
	ErrNotFound = errors.New("pick: document not found")

	ErrUnknownEncoding = errors.New("pick: unknown text encoding")
)

// ValidationError reports a shape that cannot be written.
type ValidationError struct {
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return "pick: invalid shape: " + e.Reason
	}
	return fmt.Sprintf("pick: invalid shape %d: %s", e.Index, e.Reason)
}

// ParseError reports a line of a boxes or entities file that could not be decoded.
type ParseError struct {
	Path   string
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("pick: parse ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(" ")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// CommitError is returned by Save when some outputs of a document were moved
// into place and others were not. The document is inconsistent on disk until
// it is saved again.
type CommitError struct {
	Name      string
	Committed []string
	Pending   []string
	Err       error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("pick: %s partially saved (committed %v, pending %v): %v", e.Name, e.Committed, e.Pending, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }
