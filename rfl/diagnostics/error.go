package diagnostics

import "fmt"

// ParseError represents a syntax problem in a robot source file.
type ParseError struct {
	span    Span
	message string
}

// NewParseError creates a new ParseError with the given message and span.
func NewParseError(message string, span Span) ParseError {
	return ParseError{
		message: message,
		span:    span,
	}
}

// NewUnexpectedTokenError creates an error for a token that is invalid at its position.
func NewUnexpectedTokenError(token string, span Span) ParseError {
	return NewParseError(fmt.Sprintf("Unexpected token %q.", token), span)
}

// NewUnclosedBlockError creates an error for a block header without a matching END.
func NewUnclosedBlockError(blockKind string, span Span) ParseError {
	return NewParseError(fmt.Sprintf("%s block is missing its END marker.", blockKind), span)
}

// NewDanglingEndError creates an error for an END marker without an open block.
func NewDanglingEndError(span Span) ParseError {
	return NewParseError("END marker without a matching block header.", span)
}

// NewDanglingBranchError creates an error for an ELSE/EXCEPT/FINALLY outside its block.
func NewDanglingBranchError(marker string, span Span) ParseError {
	return NewParseError(fmt.Sprintf("%s branch outside of a matching block.", marker), span)
}

// NewOrphanContinuationError creates an error for a continuation line with no owning statement.
func NewOrphanContinuationError(span Span) ParseError {
	return NewParseError("Continuation line without a statement to continue.", span)
}

// Message returns the error message.
func (e ParseError) Message() string {
	return e.message
}

// Span returns the location of the error.
func (e ParseError) Span() Span {
	return e.span
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return e.message
}
