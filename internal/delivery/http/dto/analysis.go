package dto

type CreateAnalysisRequest struct {
	UserID   string `json:"user_id"`
	JobID    string `json:"job_id"`
	ResumeID string `json:"resume_id"`
}
