package user

import (
	"context"

	"biltone-supplies/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetApproved(ctx context.Context, email string, approved bool) error
	UpdateName(ctx context.Context, email, name string) error

	CreatePendingUpdate(ctx context.Context, u domain.PendingUpdate) error
	GetPendingUpdate(ctx context.Context, id string) (*domain.PendingUpdate, error)
	ListPendingUpdates(ctx context.Context) ([]domain.PendingUpdate, error)
	DeletePendingUpdate(ctx context.Context, id string) error
}
