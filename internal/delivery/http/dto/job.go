package dto

type CreateJobRequest struct {
	UserID      string `json:"user_id"`
	JDText      string `json:"jd_text"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
}

type DeleteMultipleRequest struct {
	JobIDs []string `json:"job_ids"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}
