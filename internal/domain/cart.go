package domain

import "time"

// CartLine is one product-quantity pairing within a cart. Title, price and
// image are snapshots captured when the line was first added; they are never
// re-resolved from the catalog afterwards.
type CartLine struct {
	ProductID      string    `json:"productId"`
	Title          string    `json:"title"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	Quantity       int       `json:"quantity"`
	AddedAt        time.Time `json:"addedAt"`
}

// Cart holds the lines of one browsing session in insertion order. At most
// one line exists per product.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
}

// TotalCents sums unit price times quantity over all lines.
func (c Cart) TotalCents() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.UnitPriceCents * int64(line.Quantity)
	}
	return total
}

// ItemCount sums quantities over all lines, for badge display.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Clone returns a copy whose lines do not alias the receiver's slice.
func (c Cart) Clone() Cart {
	out := Cart{SessionID: c.SessionID}
	if len(c.Lines) > 0 {
		out.Lines = make([]CartLine, len(c.Lines))
		copy(out.Lines, c.Lines)
	}
	return out
}
