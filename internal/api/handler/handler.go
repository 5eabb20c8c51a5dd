package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/platewise/platewise/internal/api/response"
	"github.com/platewise/platewise/internal/domain"
)

var validate = validator.New()

// validationMessages maps validator errors to per-field messages
func validationMessages(err error) any {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make(map[string]string)
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages[field] = "field is required"
		case "email":
			messages[field] = "invalid email format"
		case "min":
			messages[field] = "must be at least " + e.Param()
		case "max":
			messages[field] = "must be at most " + e.Param()
		case "gt":
			messages[field] = "must be greater than " + e.Param()
		default:
			messages[field] = "validation failed on " + e.Tag()
		}
	}
	return messages
}

// writeServiceError translates service errors into HTTP responses by
// category: validation failures are user-correctable, external-service
// failures map to 502 so callers can tell them apart.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		response.BadRequest(w, map[string]string{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
		return
	}

	var serviceErr *domain.ExternalServiceError
	if errors.As(err, &serviceErr) {
		log.Error().Err(err).Msg("external service failure")
		response.BadGateway(w, map[string]string{
			"error": serviceErr.Message,
			"type":  "external_api_error",
		})
		return
	}

	if err.Error() == "access denied" {
		response.Forbidden(w, err.Error())
		return
	}

	log.Error().Err(err).Msg("unexpected error")
	response.InternalError(w, err.Error())
}
