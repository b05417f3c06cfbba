package handler

import (
	"resumeforge/internal/delivery/http/dto"
	"resumeforge/internal/delivery/http/middleware"
	"resumeforge/internal/pkg/response"
	"resumeforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	jobs *usecase.JobUsecase
}

func NewJobHandler(jobs *usecase.JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) HandleCreateJob(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}

	j, err := h.jobs.Create(c.Context(), usecase.CreateJobInput{
		UserID:          req.UserID,
		JDText:          req.JDText,
		TitleOverride:   req.JobTitle,
		CompanyOverride: req.CompanyName,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "success", j)
}

func (h *JobHandler) HandleGetJob(c fiber.Ctx) error {
	j, err := h.jobs.Get(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", j)
}

func (h *JobHandler) HandleDeleteJob(c fiber.Ctx) error {
	j, err := h.jobs.SoftDelete(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "job deleted", j)
}

func (h *JobHandler) HandleDeleteMultiple(c fiber.Ctx) error {
	var req dto.DeleteMultipleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}

	result, err := h.jobs.SoftDeleteMany(c.Context(), req.JobIDs)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", result)
}

func (h *JobHandler) HandleRestoreJob(c fiber.Ctx) error {
	j, err := h.jobs.Restore(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "job restored", j)
}

func (h *JobHandler) HandleUpdateStatus(c fiber.Ctx) error {
	var req dto.UpdateJobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}

	j, err := h.jobs.UpdateStatus(c.Context(), c.Params("job_id"), req.Status, req.Notes)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "status updated", j)
}

func (h *JobHandler) HandleHistory(c fiber.Ctx) error {
	events, err := h.jobs.History(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", events)
}
