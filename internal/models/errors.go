package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned by the API. Handlers map them onto HTTP statuses:
// VALIDATION_ERROR covers malformed ids, bad payloads and duplicate friend
// requests (400); NOT_FOUND covers unknown users, moods, connections and
// feed items (404); UNAUTHORIZED covers acting on another user's request or
// feed entry (403); INTERNAL_ERROR covers database, cache and broker
// failures (500).
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError is the error type services return to handlers. Code selects the
// HTTP status; Message is safe to show to clients. Err holds the underlying
// cause for internal errors and never leaves the Details field.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing resource, e.g. a mood id that is not in
// the catalog or a user that was deleted.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewValidationError reports client input the request cannot proceed with.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewUnauthorizedError reports an action the authenticated user may not
// perform, such as accepting a friend request addressed to someone else.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewInternalError wraps an infrastructure failure behind a generic message.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes the standardized error body for the given status.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		response := ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
		return c.Status(status).JSON(response)
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}
