package handler

import (
	"resumeforge/internal/delivery/http/dto"
	"resumeforge/internal/delivery/http/middleware"
	"resumeforge/internal/pkg/response"
	"resumeforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	analyses *usecase.AnalysisUsecase
}

func NewAnalysisHandler(analyses *usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{analyses: analyses}
}

func (h *AnalysisHandler) HandleCreateAnalysis(c fiber.Ctx) error {
	var req dto.CreateAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}

	a, err := h.analyses.Create(c.Context(), req.UserID, req.JobID, req.ResumeID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "success", a)
}

func (h *AnalysisHandler) HandleGetAnalysis(c fiber.Ctx) error {
	a, err := h.analyses.Get(c.Context(), c.Params("analysis_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", a)
}

func (h *AnalysisHandler) HandleListByJob(c fiber.Ctx) error {
	analyses, err := h.analyses.ListByJob(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", analyses)
}
