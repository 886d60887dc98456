package catalog

import (
	"context"
	"testing"
	"time"

	"biltone-supplies/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	saved *domain.Product
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) { return nil, nil }

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Save(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.saved = &p
	return &p, nil
}

func (s *stubRepo) Delete(_ context.Context, _ string) error { return nil }

func TestSaveTrimsAndPersists(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	p, err := svc.Save(context.Background(), SaveInput{
		Title:      "  Salon Cape ",
		PriceCents: 500,
		Stock:      200,
		Category:   "Accessories",
	})
	require.NoError(t, err)
	assert.Equal(t, "Salon Cape", p.Title)
	require.NotNil(t, repo.saved)
}

func TestSaveValidation(t *testing.T) {
	svc := New(&stubRepo{})
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	tooHigh := int64(5000)
	fine := int64(3999)

	_, err := svc.Save(ctx, SaveInput{Title: " ", PriceCents: 100})
	assert.Error(t, err, "blank title")

	_, err = svc.Save(ctx, SaveInput{Title: "Shears", PriceCents: 0})
	assert.Error(t, err, "non-positive price")

	_, err = svc.Save(ctx, SaveInput{Title: "Shears", PriceCents: 100, Stock: -1})
	assert.Error(t, err, "negative stock")

	_, err = svc.Save(ctx, SaveInput{Title: "Clipper", PriceCents: 4500, OfferCents: &tooHigh, OfferExpiresAt: &expiry})
	assert.Error(t, err, "offer above list price")

	_, err = svc.Save(ctx, SaveInput{Title: "Clipper", PriceCents: 4500, OfferCents: &fine})
	assert.Error(t, err, "offer without expiry")

	_, err = svc.Save(ctx, SaveInput{Title: "Clipper", PriceCents: 4500, OfferCents: &fine, OfferExpiresAt: &expiry})
	assert.NoError(t, err)
}
