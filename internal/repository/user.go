package repository

import (
	"context"

	"emedicine/internal/domain"
)

// UserRepository defines persistence operations for User documents.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
