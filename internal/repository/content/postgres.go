package content

import (
	"context"
	"errors"

	"biltone-supplies/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, key string) (*domain.ContentBlock, error) {
	const q = `
SELECT key, html, updated_at
FROM content_blocks
WHERE key = $1
`
	var block domain.ContentBlock
	if err := r.pool.QueryRow(ctx, q, key).Scan(&block.Key, &block.HTML, &block.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &block, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, block domain.ContentBlock) (*domain.ContentBlock, error) {
	const q = `
INSERT INTO content_blocks (key, html)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET
    html = EXCLUDED.html,
    updated_at = now()
RETURNING key, html, updated_at
`
	var out domain.ContentBlock
	if err := r.pool.QueryRow(ctx, q, block.Key, block.HTML).Scan(&out.Key, &out.HTML, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
