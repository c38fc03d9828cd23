package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"

	// CodeFetchFailed covers transport, HTTP status and decode failures of any
	// request made against the creature API.
	CodeFetchFailed Code = "FETCH_FAILED"
	// CodeDescriptionUnavailable means the species document had no flavor text
	// in the requested language.
	CodeDescriptionUnavailable Code = "DESCRIPTION_UNAVAILABLE"
	// CodeMalformedPayload means a document decoded fine but cannot produce a
	// valid record (no types, three types, empty name...).
	CodeMalformedPayload Code = "MALFORMED_PAYLOAD"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeFailedPrecondition:
		return 2
	case CodeFetchFailed, CodeDeadlineExceeded, CodeCanceled:
		return 3
	case CodeDescriptionUnavailable, CodeMalformedPayload:
		return 4
	default:
		return 1
	}
}
