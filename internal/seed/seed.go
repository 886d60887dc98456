package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Title      string
	PriceCents int64
	Stock      int
	Category   string
	ImageURL   string
	OfferCents *int64
	OfferHours int
}

type userSeed struct {
	Email    string
	Name     string
	Password string
	Role     string
	Approved bool
}

// Apply inserts the demo storefront data for manual testing. Products key on
// title and users on email, so re-running is safe.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	offer := func(cents int64) *int64 { return &cents }

	products := []productSeed{
		{Title: "Professional Barber Shears", PriceCents: 2500, Stock: 50, Category: "Tools", ImageURL: "https://placehold.co/400x400?text=Shears"},
		{Title: "Electric Hair Clipper", PriceCents: 4500, Stock: 30, Category: "Electronics", ImageURL: "https://placehold.co/400x400?text=Clipper", OfferCents: offer(3999), OfferHours: 24},
		{Title: "Beard Oil (Premium)", PriceCents: 800, Stock: 100, Category: "Grooming", ImageURL: "https://placehold.co/400x400?text=Beard+Oil"},
		{Title: "Salon Cape", PriceCents: 500, Stock: 200, Category: "Accessories", ImageURL: "https://placehold.co/400x400?text=Cape"},
		{Title: "Shaving Cream", PriceCents: 450, Stock: 80, Category: "Grooming", ImageURL: "https://placehold.co/400x400?text=Cream"},
		{Title: "Hair Dryer", PriceCents: 3200, Stock: 25, Category: "Electronics", ImageURL: "https://placehold.co/400x400?text=Dryer"},
		{Title: "Black Shampoo", PriceCents: 1200, Stock: 40, Category: "Grooming", ImageURL: "https://placehold.co/400x400?text=Black+Shampoo"},
		{Title: "Neck Rolls (Pack)", PriceCents: 300, Stock: 150, Category: "Accessories", ImageURL: "https://placehold.co/400x400?text=Neck+Rolls"},
		{Title: "Nivea Cream (Blue Tin)", PriceCents: 450, Stock: 60, Category: "Cosmetics", ImageURL: "https://placehold.co/400x400?text=Nivea+Cream"},
		{Title: "Bumsy Lotion", PriceCents: 600, Stock: 50, Category: "Cosmetics", ImageURL: "https://placehold.co/400x400?text=Bumsy"},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Title, err)
		}
	}

	users := []userSeed{
		{Email: "owner@biltone.com", Name: "System Owner", Password: "Biltone-Owner1", Role: "owner", Approved: true},
		{Email: "admin@biltone.com", Name: "Shop Admin", Password: "Biltone-Admin1", Role: "admin", Approved: true},
	}
	for _, u := range users {
		if err := upsertUser(ctx, pool, u); err != nil {
			return fmt.Errorf("upsert user %s: %w", u.Email, err)
		}
	}

	if err := upsertContent(ctx, pool, "aboutUs",
		"<h1>About Biltone Supplies</h1><p>Biltone Supplies is your customer based platform dedicated to providing you with affordable barber shop and beauty supplies.</p>"); err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}

	if err := insertWelcomeMessage(ctx, pool); err != nil {
		return fmt.Errorf("insert welcome message: %w", err)
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	var offerExpires *time.Time
	if p.OfferCents != nil {
		t := time.Now().Add(time.Duration(p.OfferHours) * time.Hour)
		offerExpires = &t
	}
	const q = `
INSERT INTO products (title, price_cents, stock, category, image_url, offer_cents, offer_expires_at)
SELECT $1, $2, $3, $4, $5, $6, $7
WHERE NOT EXISTS (SELECT 1 FROM products WHERE title = $1)
`
	_, err := pool.Exec(ctx, q, p.Title, p.PriceCents, p.Stock, p.Category, p.ImageURL, p.OfferCents, offerExpires)
	return err
}

func upsertUser(ctx context.Context, pool *pgxpool.Pool, u userSeed) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, name, password_hash, role, approved)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, u.Email, u.Name, string(hashed), u.Role, u.Approved)
	return err
}

func upsertContent(ctx context.Context, pool *pgxpool.Pool, key, html string) error {
	const q = `
INSERT INTO content_blocks (key, html)
VALUES ($1, $2)
ON CONFLICT (key) DO NOTHING
`
	_, err := pool.Exec(ctx, q, key, html)
	return err
}

func insertWelcomeMessage(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO messages (id, name, email, body, status)
VALUES ('MSG-seed-welcome', 'John Doe', 'john@example.com', 'Do you supply wholesale?', 'New')
ON CONFLICT (id) DO NOTHING
`
	_, err := pool.Exec(ctx, q)
	return err
}
