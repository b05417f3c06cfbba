package resume

import (
	"context"
	"errors"
	"time"

	"resumeforge/internal/schema"
)

// ErrNotFound is returned when no resume exists for the given id.
var ErrNotFound = errors.New("resume not found")

// BaseResume is an uploaded source resume. At most one per user should be
// primary, though the flag itself is just data: the usecase layer enforces
// the invariant.
type BaseResume struct {
	ResumeID         string             `json:"resume_id" dynamodbav:"resume_id"`
	UserID           string             `json:"user_id" dynamodbav:"user_id"`
	FileName         string             `json:"file_name" dynamodbav:"file_name"`
	OriginalFilename string             `json:"original_filename" dynamodbav:"original_filename"`
	ResumeName       string             `json:"resume_name" dynamodbav:"resume_name"`
	FileType         string             `json:"file_type" dynamodbav:"file_type"`
	FileSize         int64              `json:"file_size" dynamodbav:"file_size"`
	FileURL          string             `json:"file_url" dynamodbav:"file_url"`
	IsPrimary        bool               `json:"is_primary" dynamodbav:"is_primary"`
	Version          int                `json:"version" dynamodbav:"version"`
	ParsedContent    *schema.ResumeData `json:"parsed_content,omitempty" dynamodbav:"parsed_content,omitempty"`
	CreatedAt        time.Time          `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" dynamodbav:"updated_at"`
}

// GeneratedResume is a job-tailored rendition derived from a base resume.
type GeneratedResume struct {
	GeneratedResumeID string    `json:"generated_resume_id" dynamodbav:"generated_resume_id"`
	UserID            string    `json:"user_id" dynamodbav:"user_id"`
	BaseResumeID      string    `json:"base_resume_id" dynamodbav:"base_resume_id"`
	JobID             string    `json:"job_id" dynamodbav:"job_id"`
	FileName          string    `json:"file_name" dynamodbav:"file_name"`
	FileURL           string    `json:"file_url" dynamodbav:"file_url"`
	DownloadCount     int       `json:"download_count" dynamodbav:"download_count"`
	FeedbackRating    *int      `json:"feedback_rating,omitempty" dynamodbav:"feedback_rating,omitempty"`
	IsActive          bool      `json:"is_active" dynamodbav:"is_active"`
	CreatedAt         time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// BaseRepository persists uploaded base resumes.
type BaseRepository interface {
	Put(ctx context.Context, r *BaseResume) error
	Get(ctx context.Context, resumeID string) (*BaseResume, error)
	ListByUser(ctx context.Context, userID string) ([]BaseResume, error)
}

// GeneratedRepository persists tailored resume renditions.
type GeneratedRepository interface {
	Put(ctx context.Context, r *GeneratedResume) error
	Get(ctx context.Context, generatedResumeID string) (*GeneratedResume, error)
	ListByUser(ctx context.Context, userID string) ([]GeneratedResume, error)
	ListByJob(ctx context.Context, jobID string) ([]GeneratedResume, error)
}
