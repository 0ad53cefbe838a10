package handler

import (
	"errors"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrStudentProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Student profile not found", nil, err)
	case errors.Is(err, usecase.ErrMentorNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Mentor not found", nil, err)
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Opportunity not found", nil, err)
	case errors.Is(err, usecase.ErrOpportunityClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Opportunity is closed", nil, err)
	case errors.Is(err, usecase.ErrNoPublicationsURL):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Mentor has no publications page", nil, err)
	case errors.Is(err, usecase.ErrIngestBusy):
		return middleware.NewAppError(fiber.StatusTooManyRequests, "Ingest queue is full", nil, err)
	case errors.Is(err, usecase.ErrIngestUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func callerID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func pathUUID(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return id, nil
}

func validationError(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", dto.ValidationDetails(err), err)
}
