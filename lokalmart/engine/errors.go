package engine

import "fmt"

// FailureCode classifies why a lifecycle operation failed. Remote codes wrap
// the underlying transport error; not-found and invalid-state failures are
// terminal and performed no writes.
type FailureCode int

const (
	CodeListingNotFound FailureCode = iota + 1
	CodeOfferNotFound
	CodeInvalidOfferState
	CodeRemoteOfferCreateFailed
	CodeRemoteOfferUpdateFailed
	CodeRemoteListingUpdateFailed
)

func (c FailureCode) String() string {
	switch c {
	case CodeListingNotFound:
		return "listing not found"
	case CodeOfferNotFound:
		return "offer not found"
	case CodeInvalidOfferState:
		return "offer is not in sent status"
	case CodeRemoteOfferCreateFailed:
		return "remote offer create failed"
	case CodeRemoteOfferUpdateFailed:
		return "remote offer update failed"
	case CodeRemoteListingUpdateFailed:
		return "remote listing update failed"
	default:
		return "unknown failure"
	}
}

// Error is the failure half of a lifecycle result: a code plus the wrapped
// cause for the remote variants. errors.Is matches on code alone, so
// callers compare against the sentinel values below.
type Error struct {
	Code  FailureCode
	cause error
}

func newError(code FailureCode, cause error) *Error {
	return &Error{Code: code, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return e.Code.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrListingNotFound           = &Error{Code: CodeListingNotFound}
	ErrOfferNotFound             = &Error{Code: CodeOfferNotFound}
	ErrInvalidOfferState         = &Error{Code: CodeInvalidOfferState}
	ErrRemoteOfferCreateFailed   = &Error{Code: CodeRemoteOfferCreateFailed}
	ErrRemoteOfferUpdateFailed   = &Error{Code: CodeRemoteOfferUpdateFailed}
	ErrRemoteListingUpdateFailed = &Error{Code: CodeRemoteListingUpdateFailed}
)
