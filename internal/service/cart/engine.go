package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"biltone-supplies/internal/domain"
	"biltone-supplies/internal/kv"
)

// Observer is notified synchronously after every successful cart mutation
// with the session's new item count, e.g. to refresh a badge.
type Observer func(sessionID string, itemCount int)

// Engine owns cart state for all sessions. Every method takes an explicit
// session ID; each session has exactly one writer, so there is no locking
// beyond what the backing store provides. The whole cart is written back on
// every mutation.
type Engine struct {
	store     kv.Store
	logger    *log.Logger
	observers []Observer
}

func New(store kv.Store, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{store: store, logger: logger}
}

// Notify registers an observer. Not safe to call once the engine is serving.
func (e *Engine) Notify(fn Observer) {
	e.observers = append(e.observers, fn)
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get loads the persisted cart for the session. A missing or unreadable
// record degrades to an empty cart; an unreachable store is surfaced.
func (e *Engine) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	empty := domain.Cart{SessionID: sessionID}
	raw, err := e.store.Get(ctx, cartKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return empty, nil
		}
		return empty, fmt.Errorf("load cart: %w", err)
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		e.logger.Printf("cart engine: session=%s corrupt cart record, starting empty: %v", sessionID, err)
		return empty, nil
	}
	cart.SessionID = sessionID
	return cart, nil
}

// Add puts quantity units of the product in the session's cart. The unit
// price is resolved from the product's active-offer state now and frozen;
// adding the same product again only increments the existing line.
func (e *Engine) Add(ctx context.Context, sessionID string, p domain.Product, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}
	if strings.TrimSpace(p.ID) == "" {
		return domain.Cart{}, errors.New("product id required")
	}
	cart, err := e.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	found := false
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == p.ID {
			cart.Lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		now := time.Now().UTC()
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID:      p.ID,
			Title:          p.Title,
			UnitPriceCents: domain.EffectivePrice(p, now),
			ImageURL:       p.ImageURL,
			Quantity:       quantity,
			AddedAt:        now,
		})
	}

	if err := e.persist(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// Remove drops the line for productID. Absent lines are a no-op.
func (e *Engine) Remove(ctx context.Context, sessionID, productID string) (domain.Cart, error) {
	cart, err := e.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}
	kept := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	cart.Lines = kept
	if err := e.persist(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// SetQuantity overwrites the line's quantity. Zero or less removes the line.
func (e *Engine) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return e.Remove(ctx, sessionID, productID)
	}
	cart, err := e.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines[i].Quantity = quantity
			break
		}
	}
	if err := e.persist(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// Total returns the cart total in minor units, 0 for an empty cart.
func (e *Engine) Total(ctx context.Context, sessionID string) (int64, error) {
	cart, err := e.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.TotalCents(), nil
}

// Clear empties the session's cart.
func (e *Engine) Clear(ctx context.Context, sessionID string) error {
	return e.persist(ctx, domain.Cart{SessionID: sessionID})
}

func (e *Engine) persist(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := e.store.Set(ctx, cartKey(cart.SessionID), raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	count := cart.ItemCount()
	for _, fn := range e.observers {
		fn(cart.SessionID, count)
	}
	return nil
}
