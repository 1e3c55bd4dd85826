package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

func DecodeJSONBody(r *http.Request, dest any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		slog.Error("Failed to read request body",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("failed to read request body: %w", err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		slog.Warn("Empty request body", slog.String("endpoint", r.URL.Path))
		return errors.New("request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		slog.Error("Failed to parse request JSON",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

func ValidateStruct(validate *validator.Validate, data any) error {
	if err := validate.Struct(data); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			slog.Warn("User input validation failed", slog.String("error", validationErrs.Error()))
			return fmt.Errorf("validation error: %w", validationErrs)
		}

		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	return nil
}

// ParseID reads an int64 path value such as an option or auction item id.
func ParseID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, appErrors.BadRequestError(fmt.Sprintf("Missing path parameter '%s'", name))
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.AddValidationError(name, "must be a positive integer")
	}

	return id, nil
}

func ParseUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError(fmt.Sprintf("Missing path parameter '%s'", name))
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.AddValidationError(name, "must be a valid UUID").WithError(err)
	}

	return id, nil
}
