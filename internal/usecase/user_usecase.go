package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumeforge/internal/domain/user"
)

// UserUsecase manages accounts.
type UserUsecase struct {
	users  user.Repository
	logger *zap.Logger
}

func NewUserUsecase(users user.Repository, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{users: users, logger: logger}
}

// CreateOrGet returns the existing user for the email or creates a new
// one. The second return value reports whether a user was created.
func (uc *UserUsecase) CreateOrGet(ctx context.Context, email, firstName, lastName string) (*user.User, bool, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, false, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	now := time.Now()
	u := &user.User{
		UserID:           uuid.NewString(),
		Email:            email,
		FirstName:        strings.TrimSpace(firstName),
		LastName:         strings.TrimSpace(lastName),
		SubscriptionTier: user.TierFree,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.users.Put(ctx, u); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("user created", zap.String("user_id", u.UserID))
	return u, true, nil
}

// Get loads one user by id.
func (uc *UserUsecase) Get(ctx context.Context, userID string) (*user.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	u, err := uc.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return u, nil
}
