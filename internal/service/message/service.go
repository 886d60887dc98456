package message

import (
	"context"
	"errors"
	"strings"
	"time"

	"biltone-supplies/internal/domain"
	messagerepo "biltone-supplies/internal/repository/message"
	"github.com/google/uuid"
)

// Service is the contact-form inbox.
type Service struct {
	repo messagerepo.Repository
}

func New(repo messagerepo.Repository) *Service {
	return &Service{repo: repo}
}

// SaveInput is a contact-form submission.
type SaveInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Body  string `json:"message"`
}

func (s *Service) Save(ctx context.Context, in SaveInput) (*domain.Message, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	body := strings.TrimSpace(in.Body)
	if name == "" || email == "" || body == "" {
		return nil, errors.New("name, email and message required")
	}
	m := domain.Message{
		ID:        "MSG-" + uuid.NewString(),
		Name:      name,
		Email:     email,
		Body:      body,
		Status:    domain.MessageNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns messages, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Message, error) {
	return s.repo.List(ctx)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}
