package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumeforge/internal/domain/job"
	"resumeforge/internal/domain/tracking"
	"resumeforge/internal/schema"
)

// Fallbacks when neither the caller nor the analysis provide a value.
const (
	unknownPosition = "Unknown Position"
	unknownCompany  = "Unknown Company"
)

// CreateJobInput carries the request to save a new job posting. Title and
// company overrides win over whatever the analysis extracts.
type CreateJobInput struct {
	UserID          string
	JDText          string
	TitleOverride   string
	CompanyOverride string
}

// BulkDeleteResult reports which jobs a bulk delete touched.
type BulkDeleteResult struct {
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
}

// JobUsecase manages saved job postings and their application lifecycle.
type JobUsecase struct {
	jobs     job.Repository
	tracking tracking.Repository
	analyzer *Analyzer
	logger   *zap.Logger
}

func NewJobUsecase(jobs job.Repository, tr tracking.Repository, analyzer *Analyzer, logger *zap.Logger) *JobUsecase {
	return &JobUsecase{jobs: jobs, tracking: tr, analyzer: analyzer, logger: logger}
}

// Create analyzes the posting text and saves it. Analysis failure does not
// fail the save: the job is stored with a degraded record.
func (uc *JobUsecase) Create(ctx context.Context, in CreateJobInput) (*job.Job, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.JDText) == "" {
		return nil, fmt.Errorf("%w: jd text must not be blank", ErrInvalidInput)
	}

	parsed := uc.analyzer.AnalyzeJD(ctx, in.JDText)
	return uc.SaveAnalyzed(ctx, in, parsed)
}

// SaveAnalyzed persists a posting whose analysis already happened, e.g. on
// the analyze endpoint when the caller asks to keep the result.
func (uc *JobUsecase) SaveAnalyzed(ctx context.Context, in CreateJobInput, parsed *schema.JobDescription) (*job.Job, error) {
	now := time.Now()
	j := &job.Job{
		JobID:             uuid.NewString(),
		UserID:            in.UserID,
		JobTitle:          pickTitle(in.TitleOverride, parsed),
		CompanyName:       pickCompany(in.CompanyOverride, parsed),
		JDText:            in.JDText,
		ParsedJD:          parsed,
		Keywords:          parsed.Keywords(),
		Status:            job.StatusActive,
		ApplicationStatus: job.StatusNotApplied,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.jobs.Put(ctx, j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("job created",
		zap.String("job_id", j.JobID),
		zap.String("job_title", j.JobTitle),
	)
	return j, nil
}

func pickTitle(override string, parsed *schema.JobDescription) string {
	if t := strings.TrimSpace(override); t != "" {
		return t
	}
	if parsed.JobTitle != "" && parsed.JobTitle != schema.TitleNotFound {
		return parsed.JobTitle
	}
	return unknownPosition
}

func pickCompany(override string, parsed *schema.JobDescription) string {
	if c := strings.TrimSpace(override); c != "" {
		return c
	}
	if parsed.CompanyName != "" {
		return parsed.CompanyName
	}
	return unknownCompany
}

// List returns the user's jobs, newest first. Soft-deleted jobs are
// excluded unless includeDeleted is set.
func (uc *JobUsecase) List(ctx context.Context, userID string, includeDeleted bool) ([]job.Job, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	jobs, err := uc.jobs.ListByUser(ctx, userID, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

func sortJobsNewestFirst(jobs []job.Job) {
	sort.Slice(jobs, func(i, k int) bool {
		return jobs[i].CreatedAt.After(jobs[k].CreatedAt)
	})
}

// Get loads one job by id, deleted or not.
func (uc *JobUsecase) Get(ctx context.Context, jobID string) (*job.Job, error) {
	j, err := uc.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return j, nil
}

// SoftDelete marks a job deleted. The application status is left alone so
// a later restore picks the pipeline up where it stopped. Deleting an
// already-deleted job is a no-op.
func (uc *JobUsecase) SoftDelete(ctx context.Context, jobID string) (*job.Job, error) {
	j, err := uc.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.IsDeleted() {
		return j, nil
	}

	now := time.Now()
	j.Status = job.StatusDeleted
	j.DeletedAt = &now
	j.UpdatedAt = now
	if err := uc.jobs.Put(ctx, j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("job soft-deleted", zap.String("job_id", jobID))
	return j, nil
}

// SoftDeleteMany deletes each job independently and reports per-id
// outcomes rather than failing the whole batch.
func (uc *JobUsecase) SoftDeleteMany(ctx context.Context, jobIDs []string) (*BulkDeleteResult, error) {
	if len(jobIDs) == 0 {
		return nil, fmt.Errorf("%w: job ids are required", ErrInvalidInput)
	}

	result := &BulkDeleteResult{Deleted: []string{}, Failed: []string{}}
	for _, id := range jobIDs {
		if _, err := uc.SoftDelete(ctx, id); err != nil {
			uc.logger.Warn("bulk delete: job failed", zap.String("job_id", id), zap.Error(err))
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Deleted = append(result.Deleted, id)
	}
	return result, nil
}

// Restore brings a soft-deleted job back to the active lifecycle with its
// application status intact. Only deleted jobs can be restored.
func (uc *JobUsecase) Restore(ctx context.Context, jobID string) (*job.Job, error) {
	j, err := uc.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !j.IsDeleted() {
		return nil, fmt.Errorf("%w: job %s is not deleted", ErrInvalidInput, jobID)
	}

	j.Status = job.StatusActive
	j.DeletedAt = nil
	j.UpdatedAt = time.Now()
	if err := uc.jobs.Put(ctx, j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("job restored", zap.String("job_id", jobID))
	return j, nil
}

// UpdateStatus moves a job through the application pipeline and records a
// tracking event. The first transition to applied stamps applied_at.
func (uc *JobUsecase) UpdateStatus(ctx context.Context, jobID, status, notes string) (*job.Job, error) {
	if !job.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}

	j, err := uc.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.IsDeleted() {
		return nil, fmt.Errorf("%w: job %s is deleted", ErrInvalidInput, jobID)
	}

	now := time.Now()
	j.ApplicationStatus = status
	j.UpdatedAt = now
	if status == job.StatusApplied && j.AppliedAt == nil {
		j.AppliedAt = &now
	}
	if err := uc.jobs.Put(ctx, j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	event := &tracking.ApplicationTracking{
		TrackingID: uuid.NewString(),
		UserID:     j.UserID,
		JobID:      j.JobID,
		Status:     status,
		Notes:      notes,
		CreatedAt:  now,
	}
	if err := uc.tracking.Put(ctx, event); err != nil {
		// The status change already landed; losing one history event is
		// not worth failing the request.
		uc.logger.Warn("failed to record tracking event",
			zap.String("job_id", jobID),
			zap.Error(err),
		)
	}

	uc.logger.Info("job status updated",
		zap.String("job_id", jobID),
		zap.String("status", status),
	)
	return j, nil
}

// History returns the tracking events for one job, oldest first.
func (uc *JobUsecase) History(ctx context.Context, jobID string) ([]tracking.ApplicationTracking, error) {
	if _, err := uc.Get(ctx, jobID); err != nil {
		return nil, err
	}
	events, err := uc.tracking.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	sort.Slice(events, func(i, k int) bool {
		return events[i].CreatedAt.Before(events[k].CreatedAt)
	})
	return events, nil
}
