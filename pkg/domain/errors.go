package domain

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound is returned by loaders when a template name cannot
// be resolved.
var ErrTemplateNotFound = errors.New("template not found")

// ErrContextNotFound is returned by context stores when a context ID
// cannot be found.
var ErrContextNotFound = errors.New("context not found")

// UnknownTagError reports a tag invocation whose name has no registered
// implementation.
type UnknownTagError struct {
	Name   string
	Source Source
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %q at line %d, column %d", e.Name, e.Source.Line, e.Source.Column)
}

// UnexpectedSyntaxError reports structural misuse of the syntax tree: a
// node kind in a position that cannot accept it, a non-tag chained node,
// a negated string constant, or a tag result that cannot be written as
// text.
type UnexpectedSyntaxError struct {
	Reason string
	Source Source
}

func (e *UnexpectedSyntaxError) Error() string {
	return fmt.Sprintf("unexpected syntax at line %d, column %d: %s", e.Source.Line, e.Source.Column, e.Reason)
}

// EncodingError reports that serialized bytes were not valid UTF-8 where
// text was required (interpolated string constants).
type EncodingError struct {
	Detail string
}

func (e *EncodingError) Error() string {
	return "invalid text encoding: " + e.Detail
}
