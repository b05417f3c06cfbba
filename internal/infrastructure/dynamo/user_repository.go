package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"resumeforge/internal/domain/user"
)

// UserRepository implements user.Repository.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) Put(ctx context.Context, u *user.User) error {
	return r.client.putItem(ctx, r.client.tables.Users, u)
}

func (r *UserRepository) Get(ctx context.Context, userID string) (*user.User, error) {
	var u user.User
	found, err := r.client.getItem(ctx, r.client.tables.Users, "user_id", userID, &u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var users []user.User
	filter := expression.Name("email").Equal(expression.Value(email))
	if err := r.client.scan(ctx, r.client.tables.Users, filter, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, user.ErrNotFound
	}
	return &users[0], nil
}
