package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"biltone-supplies/internal/domain"
	tokenrepo "biltone-supplies/internal/repository/token"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users       map[string]*domain.User
	createErr   error
	approved    map[string]bool
	names       map[string]string
	pending     map[string]domain.PendingUpdate
	pendingErr  error
	lastCreated *domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:    map[string]*domain.User{},
		approved: map[string]bool{},
		names:    map[string]string{},
		pending:  map[string]domain.PendingUpdate{},
	}
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, ok := s.users[u.Email]; ok {
		return nil, domain.ErrAlreadyExists
	}
	stored := u
	s.users[u.Email] = &stored
	s.lastCreated = &stored
	return &stored, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) SetApproved(_ context.Context, email string, approved bool) error {
	u, ok := s.users[email]
	if !ok {
		return domain.ErrNotFound
	}
	u.Approved = approved
	s.approved[email] = approved
	return nil
}

func (s *stubUserRepo) UpdateName(_ context.Context, email, name string) error {
	u, ok := s.users[email]
	if !ok {
		return domain.ErrNotFound
	}
	u.Name = name
	s.names[email] = name
	return nil
}

func (s *stubUserRepo) CreatePendingUpdate(_ context.Context, u domain.PendingUpdate) error {
	if s.pendingErr != nil {
		return s.pendingErr
	}
	s.pending[u.ID] = u
	return nil
}

func (s *stubUserRepo) GetPendingUpdate(_ context.Context, id string) (*domain.PendingUpdate, error) {
	u, ok := s.pending[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *stubUserRepo) ListPendingUpdates(_ context.Context) ([]domain.PendingUpdate, error) {
	var out []domain.PendingUpdate
	for _, u := range s.pending {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserRepo) DeletePendingUpdate(_ context.Context, id string) error {
	if _, ok := s.pending[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.pending, id)
	return nil
}

type stubTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: map[string]tokenrepo.Token{}}
}

func (s *stubTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := s.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	s.tokens[t.Token] = t
	return nil
}

func (s *stubTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := s.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (s *stubTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := s.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tokens, token)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, approved bool, role domain.Role) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo.users[email] = &domain.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		Approved:     approved,
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := New(newStubUserRepo(), newStubTokenRepo())
	_, _, err := svc.Login(context.Background(), "ghost@biltone.com", "Password1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "admin@biltone.com", "Password1", true, domain.RoleAdmin)
	svc := New(users, newStubTokenRepo())

	_, _, err := svc.Login(context.Background(), "admin@biltone.com", "WrongPass9")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnapprovedIsPendingNotInvalid(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "new@biltone.com", "Password1", false, domain.RoleAdmin)
	svc := New(users, newStubTokenRepo())

	_, _, err := svc.Login(context.Background(), "new@biltone.com", "Password1")
	if !errors.Is(err, ErrPendingApproval) {
		t.Fatalf("expected ErrPendingApproval, got %v", err)
	}
}

func TestLoginIssuesSession(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	seedUser(t, users, "owner@biltone.com", "Password1", true, domain.RoleOwner)
	svc := New(users, tokens)

	u, token, err := svc.Login(context.Background(), "owner@biltone.com", "Password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != domain.RoleOwner {
		t.Fatalf("expected owner role, got %s", u.Role)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	got, err := svc.CurrentUser(context.Background(), token)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if got.Email != "owner@biltone.com" {
		t.Fatalf("unexpected user %s", got.Email)
	}
}

func TestCurrentUserExpiredToken(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	seedUser(t, users, "owner@biltone.com", "Password1", true, domain.RoleOwner)
	tokens.tokens["stale"] = tokenrepo.Token{
		Token:     "stale",
		Email:     "owner@biltone.com",
		Kind:      "session",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	svc := New(users, tokens)

	if _, err := svc.CurrentUser(context.Background(), "stale"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, ok := tokens.tokens["stale"]; ok {
		t.Fatal("expected expired token to be deleted")
	}
}

func TestLogoutUnknownTokenIsNoop(t *testing.T) {
	svc := New(newStubUserRepo(), newStubTokenRepo())
	if err := svc.Logout(context.Background(), "never-issued"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterCreatesUnapprovedAdmin(t *testing.T) {
	users := newStubUserRepo()
	svc := New(users, newStubTokenRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "New@Biltone.com",
		Password: "Password1",
		Name:     "Newcomer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "new@biltone.com" {
		t.Fatalf("expected lowercased email, got %s", u.Email)
	}
	if u.Approved {
		t.Fatal("new accounts must start unapproved")
	}
	if u.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", u.Role)
	}
	if u.PasswordHash == "Password1" {
		t.Fatal("password stored in the clear")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "taken@biltone.com", "Password1", true, domain.RoleAdmin)
	svc := New(users, newStubTokenRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "taken@biltone.com", Password: "Password1"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := New(newStubUserRepo(), newStubTokenRepo())
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "short"}); err == nil {
		t.Fatal("expected weak password to be rejected")
	}
}

func TestApproveProfileUpdateAppliesThenDeletes(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "admin@biltone.com", "Password1", true, domain.RoleAdmin)
	svc := New(users, newStubTokenRepo())

	upd, err := svc.RequestProfileUpdate(context.Background(), "admin@biltone.com", "Renamed Admin")
	if err != nil {
		t.Fatalf("request update: %v", err)
	}
	if err := svc.ApproveProfileUpdate(context.Background(), upd.ID); err != nil {
		t.Fatalf("approve update: %v", err)
	}
	if users.names["admin@biltone.com"] != "Renamed Admin" {
		t.Fatal("expected name change applied")
	}
	if len(users.pending) != 0 {
		t.Fatal("expected pending queue emptied")
	}
}

func TestRejectProfileUpdate(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "admin@biltone.com", "Password1", true, domain.RoleAdmin)
	svc := New(users, newStubTokenRepo())

	upd, err := svc.RequestProfileUpdate(context.Background(), "admin@biltone.com", "Renamed")
	if err != nil {
		t.Fatalf("request update: %v", err)
	}
	if err := svc.RejectProfileUpdate(context.Background(), upd.ID); err != nil {
		t.Fatalf("reject update: %v", err)
	}
	if users.names["admin@biltone.com"] != "" {
		t.Fatal("rejected update must not be applied")
	}
}
