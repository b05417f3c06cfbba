package dto

import "resumeforge/internal/domain/resume"

type SetPrimaryRequest struct {
	UserID string `json:"user_id"`
}

type PresignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

type UserResumesResponse struct {
	Uploaded  []resume.BaseResume      `json:"uploaded"`
	Generated []resume.GeneratedResume `json:"generated"`
}
