package user

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"biltone-supplies/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (email, name, password_hash, role, approved)
VALUES ($1, $2, $3, $4, $5)
RETURNING email, name, password_hash, role, approved, created_at
`
	var out domain.User
	var role string
	err := r.pool.QueryRow(ctx, q, strings.ToLower(u.Email), u.Name, u.PasswordHash, string(u.Role), u.Approved).Scan(
		&out.Email, &out.Name, &out.PasswordHash, &role, &out.Approved, &out.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("user repo: create email=%s error=%v", u.Email, err)
		return nil, err
	}
	out.Role = domain.Role(role)
	r.logger.Printf("user repo: created email=%s role=%s", out.Email, out.Role)
	return &out, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT email, name, password_hash, role, approved, created_at
FROM users
WHERE email = $1
`
	var u domain.User
	var role string
	err := r.pool.QueryRow(ctx, q, strings.ToLower(email)).Scan(&u.Email, &u.Name, &u.PasswordHash, &role, &u.Approved, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("user repo: get email=%s error=%v", email, err)
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}

func (r *postgresRepo) SetApproved(ctx context.Context, email string, approved bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE users SET approved = $1 WHERE email = $2`, approved, strings.ToLower(email))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("user repo: set approved email=%s approved=%t", email, approved)
	return nil
}

func (r *postgresRepo) UpdateName(ctx context.Context, email, name string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE users SET name = $1 WHERE email = $2`, name, strings.ToLower(email))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) CreatePendingUpdate(ctx context.Context, u domain.PendingUpdate) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO pending_updates (id, email, name, requested_at)
VALUES ($1, $2, $3, $4)
`, u.ID, strings.ToLower(u.Email), u.Name, u.RequestedAt)
	if err != nil {
		r.logger.Printf("user repo: create pending update email=%s error=%v", u.Email, err)
	}
	return err
}

func (r *postgresRepo) GetPendingUpdate(ctx context.Context, id string) (*domain.PendingUpdate, error) {
	const q = `
SELECT id, email, name, requested_at
FROM pending_updates
WHERE id = $1
`
	var u domain.PendingUpdate
	err := r.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Email, &u.Name, &u.RequestedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepo) ListPendingUpdates(ctx context.Context) ([]domain.PendingUpdate, error) {
	const q = `
SELECT id, email, name, requested_at
FROM pending_updates
ORDER BY requested_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PendingUpdate
	for rows.Next() {
		var u domain.PendingUpdate
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.RequestedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (r *postgresRepo) DeletePendingUpdate(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM pending_updates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
