package handler

import (
	"resumeforge/internal/delivery/http/dto"
	"resumeforge/internal/delivery/http/middleware"
	"resumeforge/internal/pkg/response"
	"resumeforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	resumes *usecase.ResumeUsecase
}

func NewResumeHandler(resumes *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// HandleCreateResume analyzes and saves a resume file without pushing it
// to object storage.
func (h *ResumeHandler) HandleCreateResume(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "file is required", nil, err)
	}
	data, err := readUpload(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "could not read file", nil, err)
	}

	br, err := h.resumes.Create(c.Context(), c.FormValue("user_id"), fh.Filename, data)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "success", br)
}

// HandleUploadResume stores the file in object storage, analyzes it, and
// saves the record.
func (h *ResumeHandler) HandleUploadResume(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "file is required", nil, err)
	}
	data, err := readUpload(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "could not read file", nil, err)
	}

	br, err := h.resumes.Upload(c.Context(), c.Params("user_id"), fh.Filename, data)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "success", br)
}

func (h *ResumeHandler) HandleGetResume(c fiber.Ctx) error {
	details, err := h.resumes.GetDetails(c.Context(), c.Params("resume_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", details)
}

func (h *ResumeHandler) HandleDownload(c fiber.Ctx) error {
	url, err := h.resumes.DownloadURL(c.Context(), c.Params("resume_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.PresignedURLResponse{
		URL:       url,
		ExpiresIn: 3600,
	})
}

func (h *ResumeHandler) HandlePreview(c fiber.Ctx) error {
	url, err := h.resumes.PreviewURL(c.Context(), c.Params("resume_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.PresignedURLResponse{
		URL:       url,
		ExpiresIn: 7200,
	})
}

func (h *ResumeHandler) HandleSetPrimary(c fiber.Ctx) error {
	var req dto.SetPrimaryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, nil)
	}

	br, err := h.resumes.SetPrimary(c.Context(), req.UserID, c.Params("resume_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "primary resume set", br)
}
