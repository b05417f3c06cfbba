package tracking

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no tracking record exists for the given id.
var ErrNotFound = errors.New("tracking record not found")

// ApplicationTracking is an event log entry for one application's progress.
type ApplicationTracking struct {
	TrackingID string    `json:"tracking_id" dynamodbav:"tracking_id"`
	UserID     string    `json:"user_id" dynamodbav:"user_id"`
	JobID      string    `json:"job_id" dynamodbav:"job_id"`
	Status     string    `json:"status" dynamodbav:"status"`
	Notes      string    `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Repository persists application tracking events.
type Repository interface {
	Put(ctx context.Context, t *ApplicationTracking) error
	ListByJob(ctx context.Context, jobID string) ([]ApplicationTracking, error)
	ListByUser(ctx context.Context, userID string) ([]ApplicationTracking, error)
}
