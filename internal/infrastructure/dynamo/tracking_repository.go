package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"resumeforge/internal/domain/tracking"
)

// TrackingRepository implements tracking.Repository.
type TrackingRepository struct {
	client *Client
}

func NewTrackingRepository(client *Client) *TrackingRepository {
	return &TrackingRepository{client: client}
}

func (r *TrackingRepository) Put(ctx context.Context, t *tracking.ApplicationTracking) error {
	return r.client.putItem(ctx, r.client.tables.Tracking, t)
}

func (r *TrackingRepository) ListByJob(ctx context.Context, jobID string) ([]tracking.ApplicationTracking, error) {
	filter := expression.Name("job_id").Equal(expression.Value(jobID))

	var events []tracking.ApplicationTracking
	if err := r.client.scan(ctx, r.client.tables.Tracking, filter, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *TrackingRepository) ListByUser(ctx context.Context, userID string) ([]tracking.ApplicationTracking, error) {
	filter := expression.Name("user_id").Equal(expression.Value(userID))

	var events []tracking.ApplicationTracking
	if err := r.client.scan(ctx, r.client.tables.Tracking, filter, &events); err != nil {
		return nil, err
	}
	return events, nil
}
