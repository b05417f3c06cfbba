package analysis

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no analysis exists for the given id.
var ErrNotFound = errors.New("analysis not found")

// Lifecycle states of a resume-to-job analysis.
const (
	StatusPending   = "pending"
	StatusAnalyzing = "analyzing"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ResumeAnalysis scores one base resume against one job.
type ResumeAnalysis struct {
	AnalysisID      string     `json:"analysis_id" dynamodbav:"analysis_id"`
	UserID          string     `json:"user_id" dynamodbav:"user_id"`
	JobID           string     `json:"job_id" dynamodbav:"job_id"`
	BaseResumeID    string     `json:"base_resume_id" dynamodbav:"base_resume_id"`
	AnalysisStatus  string     `json:"analysis_status" dynamodbav:"analysis_status"`
	MatchScore      *float64   `json:"match_score,omitempty" dynamodbav:"match_score,omitempty"`
	Strengths       []string   `json:"strengths,omitempty" dynamodbav:"strengths,omitempty"`
	Gaps            []string   `json:"gaps,omitempty" dynamodbav:"gaps,omitempty"`
	Recommendations []string   `json:"recommendations,omitempty" dynamodbav:"recommendations,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" dynamodbav:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// Repository persists analyses.
type Repository interface {
	Put(ctx context.Context, a *ResumeAnalysis) error
	Get(ctx context.Context, analysisID string) (*ResumeAnalysis, error)
	ListByJob(ctx context.Context, jobID string) ([]ResumeAnalysis, error)
	ListByUser(ctx context.Context, userID string) ([]ResumeAnalysis, error)
}
