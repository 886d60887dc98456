package order

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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO orders (id, status, customer_name, customer_phone, customer_email, customer_address, total_cents, created_at)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)
`, o.ID, string(o.Status), o.Customer.Name, o.Customer.Phone, o.Customer.Email, o.Customer.Address, o.TotalCents, o.CreatedAt); err != nil {
		r.logger.Printf("order repo: create id=%s error=%v", o.ID, err)
		return err
	}

	for i, line := range o.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, position, product_id, title, unit_price_cents, image_url, quantity)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
`, o.ID, i, line.ProductID, line.Title, line.UnitPriceCents, line.ImageURL, line.Quantity); err != nil {
			r.logger.Printf("order repo: create line order_id=%s product_id=%s error=%v", o.ID, line.ProductID, err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Printf("order repo: created id=%s lines=%d total_cents=%d", o.ID, len(o.Lines), o.TotalCents)
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id, status, customer_name, customer_phone, COALESCE(customer_email, ''), COALESCE(customer_address, ''), total_cents, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	var status string
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &status, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Email, &o.Customer.Address, &o.TotalCents, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	if o.Lines, err = r.fetchLines(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id, status, customer_name, customer_phone, COALESCE(customer_email, ''), COALESCE(customer_address, ''), total_cents, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(&o.ID, &status, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Email, &o.Customer.Address, &o.TotalCents, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Status = domain.OrderStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if result[i].Lines, err = r.fetchLines(ctx, result[i].ID); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *postgresRepo) SetStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		r.logger.Printf("order repo: set status id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("order repo: set status id=%s status=%s", id, status)
	return nil
}

func (r *postgresRepo) fetchLines(ctx context.Context, orderID string) ([]domain.CartLine, error) {
	const q = `
SELECT product_id, title, unit_price_cents, COALESCE(image_url, ''), quantity
FROM order_lines
WHERE order_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Title, &line.UnitPriceCents, &line.ImageURL, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
