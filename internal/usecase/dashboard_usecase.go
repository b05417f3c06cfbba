package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"resumeforge/internal/domain/analysis"
	"resumeforge/internal/domain/job"
	"resumeforge/internal/domain/resume"
)

// DashboardSummary aggregates a user's activity for the overview screen.
type DashboardSummary struct {
	TotalJobs        int            `json:"total_jobs"`
	StatusCounts     map[string]int `json:"status_counts"`
	TotalResumes     int            `json:"total_resumes"`
	GeneratedResumes int            `json:"generated_resumes"`
	TotalAnalyses    int            `json:"total_analyses"`
	RecentJobs       []job.Job      `json:"recent_jobs"`
}

// DashboardUsecase builds per-user activity summaries.
type DashboardUsecase struct {
	jobs      job.Repository
	base      resume.BaseRepository
	generated resume.GeneratedRepository
	analyses  analysis.Repository
	logger    *zap.Logger
}

func NewDashboardUsecase(
	jobs job.Repository,
	base resume.BaseRepository,
	generated resume.GeneratedRepository,
	analyses analysis.Repository,
	logger *zap.Logger,
) *DashboardUsecase {
	return &DashboardUsecase{
		jobs:      jobs,
		base:      base,
		generated: generated,
		analyses:  analyses,
		logger:    logger,
	}
}

// Summary counts the user's jobs by status and tallies resumes and
// analyses. Soft-deleted jobs are excluded.
func (uc *DashboardUsecase) Summary(ctx context.Context, userID string) (*DashboardSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	jobs, err := uc.jobs.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	resumes, err := uc.base.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	generated, err := uc.generated.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	analyses, err := uc.analyses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	counts := make(map[string]int, len(job.ValidStatuses))
	for _, s := range job.ValidStatuses {
		counts[s] = 0
	}
	for _, j := range jobs {
		counts[j.ApplicationStatus]++
	}

	recent := jobs
	sortJobsNewestFirst(recent)
	if len(recent) > 5 {
		recent = recent[:5]
	}

	uc.logger.Debug("dashboard summary built",
		zap.String("user_id", userID),
		zap.Int("jobs", len(jobs)),
	)
	return &DashboardSummary{
		TotalJobs:        len(jobs),
		StatusCounts:     counts,
		TotalResumes:     len(resumes),
		GeneratedResumes: len(generated),
		TotalAnalyses:    len(analyses),
		RecentJobs:       recent,
	}, nil
}
