package job

import (
	"context"
	"errors"
	"time"

	"resumeforge/internal/schema"
)

// ErrNotFound is returned when no job exists for the given id.
var ErrNotFound = errors.New("job not found")

// Lifecycle states. Deleted is a soft-delete marker: deleted jobs stay
// in storage and can be restored.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Application pipeline states, tracked separately from the lifecycle so a
// delete and restore never loses pipeline progress.
const (
	StatusNotApplied  = "not_applied"
	StatusApplied     = "applied"
	StatusInterviewed = "interviewed"
	StatusRejected    = "rejected"
	StatusOffered     = "offered"
)

// ValidStatuses are the application states a caller may set directly.
var ValidStatuses = []string{
	StatusNotApplied,
	StatusApplied,
	StatusInterviewed,
	StatusRejected,
	StatusOffered,
}

func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Job is a saved job posting together with its structured analysis.
type Job struct {
	JobID             string                 `json:"job_id" dynamodbav:"job_id"`
	UserID            string                 `json:"user_id" dynamodbav:"user_id"`
	JobTitle          string                 `json:"job_title" dynamodbav:"job_title"`
	CompanyName       string                 `json:"company_name" dynamodbav:"company_name"`
	JDText            string                 `json:"jd_text" dynamodbav:"jd_text"`
	ParsedJD          *schema.JobDescription `json:"parsed_jd_data,omitempty" dynamodbav:"parsed_jd_data,omitempty"`
	Keywords          []string               `json:"keywords,omitempty" dynamodbav:"keywords,omitempty"`
	Status            string                 `json:"status" dynamodbav:"status"`
	ApplicationStatus string                 `json:"application_status" dynamodbav:"application_status"`
	AppliedAt         *time.Time             `json:"applied_at,omitempty" dynamodbav:"applied_at,omitempty"`
	CreatedAt         time.Time              `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at" dynamodbav:"updated_at"`
	DeletedAt         *time.Time             `json:"deleted_at,omitempty" dynamodbav:"deleted_at,omitempty"`
}

// IsDeleted reports whether the job is soft-deleted.
func (j *Job) IsDeleted() bool {
	return j.Status == StatusDeleted
}

// Repository persists jobs. Put is used for both create and update.
type Repository interface {
	Put(ctx context.Context, j *Job) error
	Get(ctx context.Context, jobID string) (*Job, error)
	ListByUser(ctx context.Context, userID string, includeDeleted bool) ([]Job, error)
}
