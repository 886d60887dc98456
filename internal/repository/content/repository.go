package content

import (
	"context"

	"biltone-supplies/internal/domain"
)

type Repository interface {
	Get(ctx context.Context, key string) (*domain.ContentBlock, error)
	Upsert(ctx context.Context, block domain.ContentBlock) (*domain.ContentBlock, error)
}
