package handler

import (
	"resumeforge/internal/pkg/response"
	"resumeforge/internal/snapshot"

	"github.com/gofiber/fiber/v3"
)

// JDFilesHandler exposes the on-disk analysis snapshots for debugging.
type JDFilesHandler struct {
	store *snapshot.Store
}

func NewJDFilesHandler(store *snapshot.Store) *JDFilesHandler {
	return &JDFilesHandler{store: store}
}

func (h *JDFilesHandler) HandleList(c fiber.Ctx) error {
	summaries, err := h.store.ListJD()
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", summaries)
}

func (h *JDFilesHandler) HandleGet(c fiber.Ctx) error {
	doc, err := h.store.GetJD(c.Params("file_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", doc)
}
