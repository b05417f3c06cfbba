package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"resumeforge/internal/domain/job"
)

// JobRepository implements job.Repository.
type JobRepository struct {
	client *Client
}

func NewJobRepository(client *Client) *JobRepository {
	return &JobRepository{client: client}
}

func (r *JobRepository) Put(ctx context.Context, j *job.Job) error {
	return r.client.putItem(ctx, r.client.tables.Jobs, j)
}

func (r *JobRepository) Get(ctx context.Context, jobID string) (*job.Job, error) {
	var j job.Job
	found, err := r.client.getItem(ctx, r.client.tables.Jobs, "job_id", jobID, &j)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, job.ErrNotFound
	}
	return &j, nil
}

func (r *JobRepository) ListByUser(ctx context.Context, userID string, includeDeleted bool) ([]job.Job, error) {
	filter := expression.Name("user_id").Equal(expression.Value(userID))
	if !includeDeleted {
		filter = filter.And(expression.Name("status").NotEqual(expression.Value(job.StatusDeleted)))
	}

	var jobs []job.Job
	if err := r.client.scan(ctx, r.client.tables.Jobs, filter, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
