package handler

import (
	"errors"

	"resumeforge/internal/delivery/http/middleware"
	"resumeforge/internal/domain/analysis"
	"resumeforge/internal/domain/job"
	"resumeforge/internal/domain/resume"
	"resumeforge/internal/domain/user"
	"resumeforge/internal/pkg/response"
	"resumeforge/internal/snapshot"
	"resumeforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates usecase and domain sentinels into transport
// errors the middleware renders.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, job.ErrNotFound),
		errors.Is(err, resume.ErrNotFound),
		errors.Is(err, analysis.ErrNotFound),
		errors.Is(err, snapshot.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
