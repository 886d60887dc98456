package domain

import "time"

// Product is a catalog entry. Prices are KES in minor units.
type Product struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	PriceCents     int64      `json:"priceCents"`
	Stock          int        `json:"stock"`
	Category       string     `json:"category"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	OfferCents     *int64     `json:"offerCents,omitempty"`
	OfferExpiresAt *time.Time `json:"offerExpiresAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// OfferActive reports whether the product carries a discount that has not
// expired at now. Both the discounted price and the expiry must be set.
func (p Product) OfferActive(now time.Time) bool {
	return p.OfferCents != nil && p.OfferExpiresAt != nil && p.OfferExpiresAt.After(now)
}

// EffectivePrice resolves the price a customer pays at now: the discounted
// price while an offer is active, the list price otherwise.
func EffectivePrice(p Product, now time.Time) int64 {
	if p.OfferActive(now) {
		return *p.OfferCents
	}
	return p.PriceCents
}
