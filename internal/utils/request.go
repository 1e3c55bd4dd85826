package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/almasezhe/warauction/internal/api/middleware"
	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the JSON body into dest and validates it. On
// failure the 400 response is already written and false is returned.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	logger := middleware.LoggerFromContext(r.Context())

	if err := DecodeJSONBody(r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError(err.Error()).WithError(err))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.BadRequestError("Invalid input data").WithError(err))
		return false
	}

	return true
}
