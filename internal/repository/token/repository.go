package token

import (
	"context"
	"time"
)

// Token is an opaque session credential bound to a back-office user.
type Token struct {
	Token     string
	Email     string
	Kind      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, token Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
