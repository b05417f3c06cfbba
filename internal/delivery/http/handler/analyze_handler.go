package handler

import (
	"io"
	"mime/multipart"
	"strings"

	"resumeforge/internal/delivery/http/dto"
	"resumeforge/internal/delivery/http/middleware"
	"resumeforge/internal/extract"
	"resumeforge/internal/pkg/response"
	"resumeforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// AnalyzeHandler serves the stateless analysis endpoints. Persistence on
// these routes is opt-in and best-effort.
type AnalyzeHandler struct {
	analyzer *usecase.Analyzer
	jobs     *usecase.JobUsecase
	analyses *usecase.AnalysisUsecase
	logger   *zap.Logger
}

func NewAnalyzeHandler(analyzer *usecase.Analyzer, jobs *usecase.JobUsecase, analyses *usecase.AnalysisUsecase, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, jobs: jobs, analyses: analyses, logger: logger}
}

func (h *AnalyzeHandler) HandleAnalyzeJD(c fiber.Ctx) error {
	var req dto.AnalyzeJDRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}
	if strings.TrimSpace(req.JDText) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "jd_text must not be blank", nil, nil)
	}

	jd, err := h.analyzer.AnalyzeJDStrict(c.Context(), req.JDText)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "analysis failed", nil, err)
	}

	resp := dto.AnalyzeJDResponse{JobDescription: jd}
	if req.UserID != "" {
		j, err := h.jobs.SaveAnalyzed(c.Context(), usecase.CreateJobInput{
			UserID:          req.UserID,
			JDText:          req.JDText,
			TitleOverride:   req.JobTitle,
			CompanyOverride: req.CompanyName,
		}, jd)
		if err != nil {
			h.logger.Warn("analyze-jd: saving job failed", zap.Error(err))
		} else {
			resp.JobID = j.JobID
		}
	}
	return response.Success(c, fiber.StatusOK, "success", resp)
}

func (h *AnalyzeHandler) HandleAnalyzeResume(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "file is required", nil, err)
	}
	if fh.Size > usecase.MaxUploadSize {
		return middleware.NewAppError(fiber.StatusBadRequest, "file exceeds the 10MB limit", nil, nil)
	}
	if !extract.IsSupported(fh.Filename) {
		return middleware.NewAppError(fiber.StatusBadRequest,
			"unsupported file type, allowed: "+strings.Join(extract.SupportedExtensions, ", "), nil, nil)
	}

	data, err := readUpload(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "could not read file", nil, err)
	}
	text, err := extract.FromFile(fh.Filename, data)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "could not extract text from file", nil, err)
	}
	if strings.TrimSpace(text) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "file contains no extractable text", nil, nil)
	}

	rd := h.analyzer.AnalyzeResume(c.Context(), text)

	resp := dto.AnalyzeResumeResponse{ResumeData: rd}
	userID := c.FormValue("user_id")
	jobID := c.FormValue("job_id")
	resumeID := c.FormValue("resume_id")
	if userID != "" && jobID != "" && resumeID != "" {
		a, err := h.analyses.Create(c.Context(), userID, jobID, resumeID)
		if err != nil {
			h.logger.Warn("analyze-resume: recording analysis failed", zap.Error(err))
		} else {
			resp.AnalysisID = a.AnalysisID
		}
	}
	return response.Success(c, fiber.StatusOK, "success", resp)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
