package model

import "fmt"

// ExtractionError reports a failure to list the symbols of an object file.
type ExtractionError struct {
	Path Path
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract symbols from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// RewriteError reports a failure of the external symbol rename step.
type RewriteError struct {
	Path Path
	Err  error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("rewrite symbols in %s: %v", e.Path, e.Err)
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}

// IOError reports a failed file read or write.
type IOError struct {
	Op   string
	Path Path
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed header or proxy source text.
type ParseError struct {
	Path Path
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}

	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}
