package product

import (
	"context"
	"errors"
	"io"
	"log"

	"biltone-supplies/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, title, COALESCE(description, ''), price_cents, stock, category, COALESCE(image_url, ''), offer_cents, offer_expires_at, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.PriceCents, &p.Stock, &p.Category, &p.ImageURL, &p.OfferCents, &p.OfferExpiresAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Title, &p.Description, &p.PriceCents, &p.Stock, &p.Category, &p.ImageURL, &p.OfferCents, &p.OfferExpiresAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Save(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, title, description, price_cents, stock, category, image_url, offer_cents, offer_expires_at)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8, $9)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    stock = EXCLUDED.stock,
    category = EXCLUDED.category,
    image_url = EXCLUDED.image_url,
    offer_cents = EXCLUDED.offer_cents,
    offer_expires_at = EXCLUDED.offer_expires_at
RETURNING ` + productColumns + `
`
	var out domain.Product
	err := r.pool.QueryRow(ctx, q,
		p.ID,
		p.Title,
		p.Description,
		p.PriceCents,
		p.Stock,
		p.Category,
		p.ImageURL,
		p.OfferCents,
		p.OfferExpiresAt,
	).Scan(&out.ID, &out.Title, &out.Description, &out.PriceCents, &out.Stock, &out.Category, &out.ImageURL, &out.OfferCents, &out.OfferExpiresAt, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: save title=%q error=%v", p.Title, err)
		return nil, err
	}
	r.logger.Printf("product repo: saved id=%s title=%q", out.ID, out.Title)
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}
