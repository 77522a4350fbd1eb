// Package errors provides the invariant-violation error raised by the
// availability engine when its inputs are malformed.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Invariant violation codes
const (
	CodeInventoryNotFound  = "INVENTORY_NOT_FOUND"
	CodeSegmentNotFound    = "SEGMENT_NOT_FOUND"
	CodeFlightDateNotFound = "FLIGHT_DATE_NOT_FOUND"
	CodeClassNotFound      = "CLASS_NOT_FOUND"
	CodePathLengthMismatch = "PATH_LENGTH_MISMATCH"
	CodeNilBidPriceVector  = "NIL_BID_PRICE_VECTOR"
	CodeUnsortedBidPrices  = "UNSORTED_BID_PRICES"
	CodeUnknownTechnique   = "UNKNOWN_TECHNIQUE"
	CodeInvalidKey         = "INVALID_KEY"
	CodeBrokenRouting      = "BROKEN_ROUTING"
)

// InvariantError reports a programming-level defect in the data handed to
// the engine. It is never recoverable by retrying.
type InvariantError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	ClassCode string `json:"class_code,omitempty"`
	Context   string `json:"context,omitempty"`
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("invariant violation %s: %s", e.Code, e.Message)
	if e.ClassCode != "" {
		msg += fmt.Sprintf(" (class: %s)", e.ClassCode)
	}
	if e.Context != "" {
		msg += fmt.Sprintf(" [%s]", e.Context)
	}
	return msg
}

// NewInvariantError creates an InvariantError with a formatted message
func NewInvariantError(code, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewClassNotFoundError reports a class code missing from a per-segment map.
// travelSolution is the full description of the travel solution being priced.
func NewClassNotFoundError(mapName, classCode string, segmentIndex int, travelSolution string) *InvariantError {
	return &InvariantError{
		Code:      CodeClassNotFound,
		Message:   fmt.Sprintf("no %s entry for segment %d", mapName, segmentIndex),
		ClassCode: classCode,
		Context:   travelSolution,
	}
}

// IsInvariant reports whether err wraps an InvariantError
func IsInvariant(err error) bool {
	var ie *InvariantError
	return stderrors.As(err, &ie)
}

// HasCode reports whether err wraps an InvariantError with the given code
func HasCode(err error, code string) bool {
	var ie *InvariantError
	return stderrors.As(err, &ie) && ie.Code == code
}
