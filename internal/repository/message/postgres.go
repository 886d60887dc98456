package message

import (
	"context"
	"io"
	"log"

	"biltone-supplies/internal/domain"
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

func (r *postgresRepo) Create(ctx context.Context, m domain.Message) error {
	const q = `
INSERT INTO messages (id, name, email, body, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.pool.Exec(ctx, q, m.ID, m.Name, m.Email, m.Body, string(m.Status), m.CreatedAt)
	if err != nil {
		r.logger.Printf("message repo: create id=%s error=%v", m.ID, err)
	}
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Message, error) {
	const q = `
SELECT id, name, email, body, status, created_at
FROM messages
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("message repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var m domain.Message
		var status string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &status, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Status = domain.MessageStatus(status)
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *postgresRepo) MarkRead(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE messages SET status = $1 WHERE id = $2`, string(domain.MessageRead), id)
	if err != nil {
		r.logger.Printf("message repo: mark read id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
