package dto

import "resumeforge/internal/schema"

type AnalyzeJDRequest struct {
	JDText      string `json:"jd_text"`
	UserID      string `json:"user_id"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
}

// AnalyzeJDResponse flattens the extracted fields and, when the caller
// asked to keep the result, the id of the saved job.
type AnalyzeJDResponse struct {
	*schema.JobDescription
	JobID string `json:"job_id,omitempty"`
}

type AnalyzeResumeResponse struct {
	*schema.ResumeData
	AnalysisID string `json:"analysis_id,omitempty"`
}
