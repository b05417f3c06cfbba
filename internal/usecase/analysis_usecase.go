package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumeforge/internal/domain/analysis"
	"resumeforge/internal/domain/job"
	"resumeforge/internal/domain/resume"
)

// placeholderMatchScore is used until the scoring model is wired in.
const placeholderMatchScore = 75.0

// AnalysisUsecase scores base resumes against saved jobs.
type AnalysisUsecase struct {
	analyses analysis.Repository
	jobs     job.Repository
	base     resume.BaseRepository
	logger   *zap.Logger
}

func NewAnalysisUsecase(
	analyses analysis.Repository,
	jobs job.Repository,
	base resume.BaseRepository,
	logger *zap.Logger,
) *AnalysisUsecase {
	return &AnalysisUsecase{analyses: analyses, jobs: jobs, base: base, logger: logger}
}

// Create records a completed analysis of one resume against one job.
// TODO: replace the placeholder score with a model-backed comparison of
// job keywords against the parsed resume.
func (uc *AnalysisUsecase) Create(ctx context.Context, userID, jobID, resumeID string) (*analysis.ResumeAnalysis, error) {
	if userID == "" || jobID == "" || resumeID == "" {
		return nil, fmt.Errorf("%w: user id, job id and resume id are required", ErrInvalidInput)
	}

	j, err := uc.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if j.IsDeleted() {
		return nil, fmt.Errorf("%w: job %s is deleted", ErrInvalidInput, jobID)
	}
	if _, err := uc.base.Get(ctx, resumeID); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	now := time.Now()
	score := placeholderMatchScore
	a := &analysis.ResumeAnalysis{
		AnalysisID:     uuid.NewString(),
		UserID:         userID,
		JobID:          jobID,
		BaseResumeID:   resumeID,
		AnalysisStatus: analysis.StatusCompleted,
		MatchScore:     &score,
		CompletedAt:    &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.analyses.Put(ctx, a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("analysis created",
		zap.String("analysis_id", a.AnalysisID),
		zap.String("job_id", jobID),
		zap.String("resume_id", resumeID),
	)
	return a, nil
}

// Get loads one analysis by id.
func (uc *AnalysisUsecase) Get(ctx context.Context, analysisID string) (*analysis.ResumeAnalysis, error) {
	a, err := uc.analyses.Get(ctx, analysisID)
	if err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return a, nil
}

// ListByJob returns the analyses run against one job, newest first.
func (uc *AnalysisUsecase) ListByJob(ctx context.Context, jobID string) ([]analysis.ResumeAnalysis, error) {
	if jobID == "" {
		return nil, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	analyses, err := uc.analyses.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	sort.Slice(analyses, func(i, k int) bool {
		return analyses[i].CreatedAt.After(analyses[k].CreatedAt)
	})
	return analyses, nil
}
