package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation  Code = "VALIDATION_ERROR"
	CodeDecode      Code = "DECODE_ERROR"
	CodePersistence Code = "PERSISTENCE_ERROR"
	CodeNotFound    Code = "NOT_FOUND"
	CodeDependency  Code = "DEPENDENCY_ERROR"
	CodeInternal    Code = "INTERNAL_ERROR"
)

// Metadata describes how a coded error degrades. Nothing in this core is
// fatal or shown to the end user; every code has a safe fallback.
type Metadata struct {
	Recoverable    bool
	Fallback       string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Recoverable:    true,
		Fallback:       "reported as inline form state",
		DetailsAllowed: true,
	},
	CodeDecode: {
		Recoverable:    true,
		Fallback:       "fall back to the default contact set",
		DetailsAllowed: true,
	},
	CodePersistence: {
		Recoverable:    true,
		Fallback:       "in-memory state stays authoritative; next persist catches up",
		DetailsAllowed: true,
	},
	CodeNotFound: {
		Recoverable:    true,
		Fallback:       "operation becomes a silent no-op",
		DetailsAllowed: false,
	},
	CodeDependency: {
		Recoverable:    true,
		Fallback:       "fall back to stored or default region",
		DetailsAllowed: true,
	},
	CodeInternal: {
		Recoverable:    false,
		Fallback:       "logged only",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
