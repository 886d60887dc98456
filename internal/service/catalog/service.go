package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"biltone-supplies/internal/domain"
	productrepo "biltone-supplies/internal/repository/product"
)

// Service exposes the catalog to the storefront and product CRUD to the
// back office.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// SaveInput carries a product create or edit. An empty ID means create.
type SaveInput struct {
	ID             string     `json:"id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	PriceCents     int64      `json:"priceCents"`
	Stock          int        `json:"stock"`
	Category       string     `json:"category"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	OfferCents     *int64     `json:"offerCents,omitempty"`
	OfferExpiresAt *time.Time `json:"offerExpiresAt,omitempty"`
}

func (s *Service) Save(ctx context.Context, in SaveInput) (*domain.Product, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errors.New("title required")
	}
	if in.PriceCents <= 0 {
		return nil, errors.New("price must be positive")
	}
	if in.Stock < 0 {
		return nil, errors.New("stock must not be negative")
	}
	if in.OfferCents != nil {
		if *in.OfferCents <= 0 || *in.OfferCents >= in.PriceCents {
			return nil, errors.New("offer price must be positive and below the list price")
		}
		if in.OfferExpiresAt == nil {
			return nil, errors.New("offer expiry required")
		}
	}
	return s.repo.Save(ctx, domain.Product{
		ID:             strings.TrimSpace(in.ID),
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		PriceCents:     in.PriceCents,
		Stock:          in.Stock,
		Category:       strings.TrimSpace(in.Category),
		ImageURL:       strings.TrimSpace(in.ImageURL),
		OfferCents:     in.OfferCents,
		OfferExpiresAt: in.OfferExpiresAt,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
