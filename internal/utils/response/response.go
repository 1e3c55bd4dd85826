package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/almasezhe/warauction/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// APIResponse is the envelope of every JSON body the service writes.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", slog.Int("status", statusCode), slog.String("error", err.Error()))
	}
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error maps an AppError to its status and code. Any other error is reported
// as a 500 without leaking its text.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		WriteJSON(w, http.StatusInternalServerError, APIResponse{
			Error: &ErrorResponse{Code: errors.ErrCodeInternal, Message: "An unexpected error occurred"},
		})
		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	WriteJSON(w, appErr.StatusCode, APIResponse{Error: body})
}

// ValidationError reports every failed field of a request DTO in one response.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := lo.Map(errs, func(fe validator.FieldError, _ int) string {
		return fieldMessage(fe)
	})

	WriteJSON(w, http.StatusBadRequest, APIResponse{
		Error: &ErrorResponse{
			Code:    errors.ErrCodeValidation,
			Message: "Validation failed",
			Details: details,
		},
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", fe.Field())
	case "email":
		return fmt.Sprintf("Field %s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("Field %s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("Field %s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("Field %s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Field %s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("Field %s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("Field %s must not be less than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Field %s is invalid: %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
}
