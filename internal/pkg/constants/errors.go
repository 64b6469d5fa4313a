package constants

import (
	"errors"
	"net/http"
)

type CodedError struct {
	code int
	msg  string
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound   = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrBadRequest   = NewCodedError("bad request", http.StatusBadRequest)

	ErrInvalidDimensions = NewCodedError("width and height must be positive", http.StatusBadRequest)
	ErrInvalidQuantity   = NewCodedError("quantity must be at least 1", http.StatusBadRequest)
	ErrMissingMaterial   = NewCodedError("select a material first", http.StatusBadRequest)
	ErrExceedsMaxSize    = NewCodedError("requested size exceeds the material's printable size", http.StatusUnprocessableEntity)
	ErrInvalidTiers      = NewCodedError("invalid tiers", http.StatusBadRequest)
	ErrInvalidPricing    = NewCodedError("invalid pricing", http.StatusBadRequest)
)

// CodeOf returns the HTTP code of the first CodedError in err's chain.
func CodeOf(err error) int {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return http.StatusInternalServerError
}
