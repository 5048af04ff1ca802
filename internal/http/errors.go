package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/guttosm/waitlist-service/internal/circuitbreaker"
	"github.com/guttosm/waitlist-service/internal/domain/dto"
	"github.com/guttosm/waitlist-service/internal/i18n"
	"github.com/guttosm/waitlist-service/internal/service"
)

// writeServiceError maps service errors onto the error envelope.
func writeServiceError(b *ResponseBuilder, err error) {
	var applyErr *service.PlanApplyError
	var planErr *service.PlanValidationError
	var fieldErr *dto.ValidationError

	switch {
	case errors.As(err, &applyErr):
		status, key := errorStatus(applyErr.Err)
		b.ErrorWithDetails(status, key, map[string]string{
			"seated_ids": joinIDs(applyErr.Seated),
		}, err)
	case errors.As(err, &planErr):
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationSeating, map[string]string{
			"reason": planErr.Error(),
		}, err)
	case errors.As(err, &fieldErr):
		b.ErrorWithDetails(http.StatusBadRequest, validationKey(fieldErr), map[string]string{
			fieldErr.Field: fieldErr.Message,
		}, nil)
	default:
		status, key := errorStatus(err)
		if status < http.StatusInternalServerError {
			// client errors are not logged
			err = nil
		}
		b.Error(status, key, err)
	}
}

// errorStatus picks the status and message key for errors without details.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		return http.StatusNotFound, i18n.ErrKeyEntryNotFound
	case errors.Is(err, service.ErrInvalidStatus):
		return http.StatusBadRequest, i18n.ErrKeyValidationStatus
	case errors.Is(err, service.ErrInvalidPartySize):
		return http.StatusBadRequest, i18n.ErrKeyValidationPartySize
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// validationKey picks the translated message for a request field error.
func validationKey(err *dto.ValidationError) string {
	switch err.Field {
	case "name":
		return i18n.ErrKeyValidationName
	case "party_size":
		return i18n.ErrKeyValidationPartySize
	case "status":
		return i18n.ErrKeyValidationStatus
	case "id":
		return i18n.ErrKeyValidationID
	default:
		return i18n.ErrKeyInvalidRequest
	}
}
