package content

import (
	"context"
	"errors"
	"strings"

	"biltone-supplies/internal/domain"
	contentrepo "biltone-supplies/internal/repository/content"
)

// Service serves and edits page content blocks.
type Service struct {
	repo contentrepo.Repository
}

func New(repo contentrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, key string) (*domain.ContentBlock, error) {
	return s.repo.Get(ctx, strings.TrimSpace(key))
}

func (s *Service) Save(ctx context.Context, key, html string) (*domain.ContentBlock, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("content key required")
	}
	return s.repo.Upsert(ctx, domain.ContentBlock{Key: key, HTML: html})
}
