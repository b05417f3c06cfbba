package user

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no user exists for the given id.
var ErrNotFound = errors.New("user not found")

// TierFree is the subscription tier every account starts on.
const TierFree = "free"

// User is an account that owns jobs, resumes, and analyses.
type User struct {
	UserID            string    `json:"user_id" dynamodbav:"user_id"`
	Email             string    `json:"email" dynamodbav:"email"`
	FirstName         string    `json:"first_name" dynamodbav:"first_name"`
	LastName          string    `json:"last_name" dynamodbav:"last_name"`
	SubscriptionTier  string    `json:"subscription_tier" dynamodbav:"subscription_tier"`
	TotalApplications int       `json:"total_applications" dynamodbav:"total_applications"`
	TotalInterviews   int       `json:"total_interviews" dynamodbav:"total_interviews"`
	CreatedAt         time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Repository persists users.
type Repository interface {
	Put(ctx context.Context, u *User) error
	Get(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
