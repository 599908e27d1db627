package domain

import "errors"

type Code string

const (
	CodeNotFound          Code = "not_found"
	CodeConflict          Code = "conflict"
	CodeIneligible        Code = "ineligible"
	CodeForbidden         Code = "forbidden"
	CodeInvalidTransition Code = "invalid_transition"
	CodeValidation        Code = "validation"
)

// Error is the taxonomy the core returns to its callers. The HTTP layer maps
// codes to status codes; everything else wraps with fmt.Errorf("%w").
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return string(e.Code) + ": " + e.Message }

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func IsCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

func ErrCode(err error) (Code, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}
