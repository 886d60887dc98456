package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"biltone-supplies/internal/domain"
	tokenrepo "biltone-supplies/internal/repository/token"
	userrepo "biltone-supplies/internal/repository/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPendingApproval is returned when credentials are valid but the
	// account has not been approved by the owner yet.
	ErrPendingApproval = errors.New("account pending approval")
	// ErrInvalidToken indicates the provided session token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles back-office login, sessions, and account approval.
type Service struct {
	users       userrepo.Repository
	tokens      *tokenManager
	sessionTTL  time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(users userrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		users:       users,
		tokens:      newTokenManager(tokens),
		sessionTTL:  48 * time.Hour,
		passwordMin: 8,
	}
}

// RegisterInput captures a new admin applicant.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates an admin account that stays unusable until the owner
// approves it. The password is hashed; it is never stored in the clear.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, errors.New("email required")
	}
	password := strings.TrimSpace(in.Password)
	if err := validatePassword(password, s.passwordMin); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, domain.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
		Approved:     false,
	})
}

// Login validates credentials and returns the user plus a session token.
// An unapproved account with a correct password fails with
// ErrPendingApproval so the applicant is not told the password was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !u.Approved {
		return nil, "", ErrPendingApproval
	}
	token, err := s.tokens.Issue(ctx, u.Email, "session", s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// CurrentUser resolves the session token to its user.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	u, err := s.users.GetByEmail(ctx, meta.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// Logout deletes the session binding. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// Approve unlocks an admin account.
func (s *Service) Approve(ctx context.Context, email string) error {
	return s.users.SetApproved(ctx, strings.TrimSpace(strings.ToLower(email)), true)
}

// RequestProfileUpdate queues a name change for owner review.
func (s *Service) RequestProfileUpdate(ctx context.Context, email, name string) (*domain.PendingUpdate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name required")
	}
	u := domain.PendingUpdate{
		ID:          "UPD-" + uuid.NewString(),
		Email:       strings.TrimSpace(strings.ToLower(email)),
		Name:        name,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.users.CreatePendingUpdate(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListPendingUpdates returns queued profile changes, oldest first.
func (s *Service) ListPendingUpdates(ctx context.Context) ([]domain.PendingUpdate, error) {
	return s.users.ListPendingUpdates(ctx)
}

// ApproveProfileUpdate applies the queued change, then removes it from the
// queue. The apply happens first so a failure leaves the request visible.
func (s *Service) ApproveProfileUpdate(ctx context.Context, id string) error {
	upd, err := s.users.GetPendingUpdate(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.UpdateName(ctx, upd.Email, upd.Name); err != nil {
		return fmt.Errorf("apply profile update: %w", err)
	}
	return s.users.DeletePendingUpdate(ctx, id)
}

// RejectProfileUpdate drops the queued change without applying it.
func (s *Service) RejectProfileUpdate(ctx context.Context, id string) error {
	return s.users.DeletePendingUpdate(ctx, id)
}

func validatePassword(p string, min int) error {
	trimmed := strings.TrimSpace(p)
	if len(trimmed) < min {
		return fmt.Errorf("password must be at least %d characters", min)
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range trimmed {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number")
	}
	return nil
}
