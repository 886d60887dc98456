package order

import (
	"context"

	"biltone-supplies/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
