package httpserver

import (
	"context"

	"biltone-supplies/internal/domain"
	authsvc "biltone-supplies/internal/service/auth"
	catalogsvc "biltone-supplies/internal/service/catalog"
	messagesvc "biltone-supplies/internal/service/message"
	ordersvc "biltone-supplies/internal/service/order"
)

// CatalogService is the slice of the catalog the routes consume.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, in catalogsvc.SaveInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CartEngine is the cart contract the routes consume. Every call is scoped
// to the session ID taken from the X-Session-ID header.
type CartEngine interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Add(ctx context.Context, sessionID string, p domain.Product, quantity int) (domain.Cart, error)
	Remove(ctx context.Context, sessionID, productID string) (domain.Cart, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type OrderService interface {
	Place(ctx context.Context, sessionID string, in ordersvc.PlaceInput) (*domain.Order, error)
	SetStatus(ctx context.Context, id, status string) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
	Approve(ctx context.Context, email string) error
	RequestProfileUpdate(ctx context.Context, email, name string) (*domain.PendingUpdate, error)
	ListPendingUpdates(ctx context.Context) ([]domain.PendingUpdate, error)
	ApproveProfileUpdate(ctx context.Context, id string) error
	RejectProfileUpdate(ctx context.Context, id string) error
}

type MessageService interface {
	Save(ctx context.Context, in messagesvc.SaveInput) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	MarkRead(ctx context.Context, id string) error
}

type ContentService interface {
	Get(ctx context.Context, key string) (*domain.ContentBlock, error)
	Save(ctx context.Context, key, html string) (*domain.ContentBlock, error)
}

// Deps bundles the services the router needs.
type Deps struct {
	Catalog  CatalogService
	Carts    CartEngine
	Orders   OrderService
	Auth     AuthService
	Messages MessageService
	Content  ContentService
}
