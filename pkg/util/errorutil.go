package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

const (
	CodeValidation = "VALIDATION_FAILED"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
// Title and Message are rendered to callers as {"error": Title, "message": Message}.
type DomainError struct {
	Code       string
	Title      string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Title, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, title, message string, status int) *DomainError {
	return &DomainError{Code: code, Title: title, Message: message, HTTPStatus: status}
}

func NewValidationError(title, message string) error {
	return NewDomainError(CodeValidation, title, message, http.StatusBadRequest)
}

func NewNotFound(title, message string) error {
	return NewDomainError(CodeNotFound, title, message, http.StatusNotFound)
}

// NewInternalError hides err behind the generic 500 body.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Title:      "Internal Server Error",
		Message:    "Something went wrong!",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInternalErrorWithMessage is NewInternalError with a caller-facing message.
func NewInternalErrorWithMessage(message string, err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Title:      "Internal Server Error",
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch {
		case fiberErr.Code == http.StatusNotFound:
			return NewDomainError(CodeNotFound, "Not Found", "The requested endpoint does not exist", http.StatusNotFound)
		case fiberErr.Code < http.StatusInternalServerError:
			return NewDomainError(CodeValidation, http.StatusText(fiberErr.Code), fiberErr.Message, fiberErr.Code)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewDomainError(CodeNotFound, "Not Found", "resource not found", http.StatusNotFound)
	}
	return NewInternalError(err).(*DomainError)
}

// MapError converts err into a DomainError, passing nil through.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}
