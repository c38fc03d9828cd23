package errors

import (
	"errors"
)

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// Type checking helpers

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsFetchFailed checks if an error came from a failed request against the creature API
func IsFetchFailed(err error) bool {
	return GetCode(err) == CodeFetchFailed
}

// IsDescriptionUnavailable checks if an error is a missing description error
func IsDescriptionUnavailable(err error) bool {
	return GetCode(err) == CodeDescriptionUnavailable
}

// IsMalformedPayload checks if an error is a malformed payload error
func IsMalformedPayload(err error) bool {
	return GetCode(err) == CodeMalformedPayload
}
