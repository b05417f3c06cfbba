package handler

import (
	"strconv"
	"strings"

	"resumeforge/internal/delivery/http/dto"
	"resumeforge/internal/delivery/http/middleware"
	"resumeforge/internal/pkg/response"
	"resumeforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	users     *usecase.UserUsecase
	jobs      *usecase.JobUsecase
	resumes   *usecase.ResumeUsecase
	dashboard *usecase.DashboardUsecase
}

func NewUserHandler(users *usecase.UserUsecase, jobs *usecase.JobUsecase, resumes *usecase.ResumeUsecase, dashboard *usecase.DashboardUsecase) *UserHandler {
	return &UserHandler{users: users, jobs: jobs, resumes: resumes, dashboard: dashboard}
}

func (h *UserHandler) HandleCreateUser(c fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}

	u, created, err := h.users.CreateOrGet(c.Context(), req.Email, req.FirstName, req.LastName)
	if err != nil {
		return mapUsecaseError(err)
	}

	status := fiber.StatusOK
	message := "user already exists"
	if created {
		status = fiber.StatusCreated
		message = "user created"
	}
	return response.Success(c, status, "success", dto.CreateUserResponse{
		UserID:  u.UserID,
		Message: message,
	})
}

func (h *UserHandler) HandleGetUser(c fiber.Ctx) error {
	u, err := h.users.Get(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", u)
}

func (h *UserHandler) HandleDashboard(c fiber.Ctx) error {
	summary, err := h.dashboard.Summary(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", summary)
}

func (h *UserHandler) HandleListJobs(c fiber.Ctx) error {
	includeDeleted := strings.EqualFold(c.Query("include_deleted"), "true")
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "limit must be an integer", nil, err)
	}

	jobs, err := h.jobs.List(c.Context(), c.Params("user_id"), includeDeleted)
	if err != nil {
		return mapUsecaseError(err)
	}
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return response.Success(c, fiber.StatusOK, "success", jobs)
}

func (h *UserHandler) HandleListResumes(c fiber.Ctx) error {
	userID := c.Params("user_id")

	uploaded, err := h.resumes.ListByUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	generated, err := h.resumes.ListGenerated(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.UserResumesResponse{
		Uploaded:  uploaded,
		Generated: generated,
	})
}

func (h *UserHandler) HandleListUploadedResumes(c fiber.Ctx) error {
	uploaded, err := h.resumes.ListByUser(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", uploaded)
}

func (h *UserHandler) HandleListGeneratedResumes(c fiber.Ctx) error {
	generated, err := h.resumes.ListGenerated(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", generated)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
