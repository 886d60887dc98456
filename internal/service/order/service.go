package order

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"biltone-supplies/internal/domain"
	orderrepo "biltone-supplies/internal/repository/order"
	"github.com/google/uuid"
)

// cartEngine is the slice of the cart engine checkout needs.
type cartEngine interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// Service converts cart snapshots into orders and drives the status field.
type Service struct {
	repo   orderrepo.Repository
	carts  cartEngine
	logger *log.Logger
}

func New(repo orderrepo.Repository, carts cartEngine, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, carts: carts, logger: logger}
}

// PlaceInput is the customer contact block captured at checkout.
type PlaceInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Place turns the session's cart into a Pending order. The order is
// persisted first and the cart cleared only on success, so a failed write
// never loses an order the customer believes placed. Stock and prices are
// deliberately not re-validated against the catalog here; the cart's frozen
// snapshots are authoritative.
func (s *Service) Place(ctx context.Context, sessionID string, in PlaceInput) (*domain.Order, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("customer name required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, errors.New("customer phone required")
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	snapshot := cart.Clone()
	o := domain.Order{
		ID:     "ORD-" + uuid.NewString(),
		Status: domain.OrderPending,
		Customer: domain.CustomerDetails{
			Name:    name,
			Phone:   strings.TrimSpace(in.Phone),
			Email:   strings.TrimSpace(in.Email),
			Address: strings.TrimSpace(in.Address),
		},
		Lines:      snapshot.Lines,
		TotalCents: snapshot.TotalCents(),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order exists; the customer can clear the stale cart by hand.
		s.logger.Printf("order service: order %s placed but cart %s not cleared: %v", o.ID, sessionID, err)
	}
	return &o, nil
}

// SetStatus overwrites the order's status. Any known label may follow any
// other; unknown labels are rejected.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		return err
	}
	return s.repo.SetStatus(ctx, id, parsed)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all orders, most recent first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}
