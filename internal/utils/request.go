package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	appErrors "github.com/techvault/storefront/internal/errors"
	"github.com/techvault/storefront/internal/utils/response"
)

func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(r.Body)

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

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError(err.Error()))
		return false
	}

	if err := validate.Struct(dest); err != nil {

		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			slog.Warn("User input validation failed", slog.String("error", validationErrs.Error()))
			response.ValidationError(w, validationErrs)
		} else {
			slog.Error("Unexpected validation error", slog.String("error", err.Error()))
			response.Error(w, appErrors.InternalError("Unexpected validation error").WithError(err))
		}

		return false
	}

	return true
}

// ParseID reads a UUID path value.
func ParseID(r *http.Request, name string) (uuid.UUID, error) {

	raw := r.PathValue(name)

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError(fmt.Sprintf("Invalid %s format", name)).WithError(err)
	}

	return id, nil
}

// ParseProductID reads a numeric product id path value.
func ParseProductID(r *http.Request, name string) (int64, error) {

	raw := r.PathValue(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.BadRequestError(fmt.Sprintf("Invalid %s format", name)).WithError(err)
	}

	return id, nil
}
