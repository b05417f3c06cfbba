package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"resumeforge/internal/domain/resume"
)

// BaseResumeRepository implements resume.BaseRepository.
type BaseResumeRepository struct {
	client *Client
}

func NewBaseResumeRepository(client *Client) *BaseResumeRepository {
	return &BaseResumeRepository{client: client}
}

func (r *BaseResumeRepository) Put(ctx context.Context, br *resume.BaseResume) error {
	return r.client.putItem(ctx, r.client.tables.BaseResumes, br)
}

func (r *BaseResumeRepository) Get(ctx context.Context, resumeID string) (*resume.BaseResume, error) {
	var br resume.BaseResume
	found, err := r.client.getItem(ctx, r.client.tables.BaseResumes, "resume_id", resumeID, &br)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, resume.ErrNotFound
	}
	return &br, nil
}

func (r *BaseResumeRepository) ListByUser(ctx context.Context, userID string) ([]resume.BaseResume, error) {
	filter := expression.Name("user_id").Equal(expression.Value(userID))

	var resumes []resume.BaseResume
	if err := r.client.scan(ctx, r.client.tables.BaseResumes, filter, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// GeneratedResumeRepository implements resume.GeneratedRepository.
type GeneratedResumeRepository struct {
	client *Client
}

func NewGeneratedResumeRepository(client *Client) *GeneratedResumeRepository {
	return &GeneratedResumeRepository{client: client}
}

func (r *GeneratedResumeRepository) Put(ctx context.Context, gr *resume.GeneratedResume) error {
	return r.client.putItem(ctx, r.client.tables.GeneratedResumes, gr)
}

func (r *GeneratedResumeRepository) Get(ctx context.Context, generatedResumeID string) (*resume.GeneratedResume, error) {
	var gr resume.GeneratedResume
	found, err := r.client.getItem(ctx, r.client.tables.GeneratedResumes, "generated_resume_id", generatedResumeID, &gr)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, resume.ErrNotFound
	}
	return &gr, nil
}

func (r *GeneratedResumeRepository) ListByUser(ctx context.Context, userID string) ([]resume.GeneratedResume, error) {
	filter := expression.Name("user_id").Equal(expression.Value(userID))

	var resumes []resume.GeneratedResume
	if err := r.client.scan(ctx, r.client.tables.GeneratedResumes, filter, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *GeneratedResumeRepository) ListByJob(ctx context.Context, jobID string) ([]resume.GeneratedResume, error) {
	filter := expression.Name("job_id").Equal(expression.Value(jobID))

	var resumes []resume.GeneratedResume
	if err := r.client.scan(ctx, r.client.tables.GeneratedResumes, filter, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}
