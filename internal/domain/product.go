package domain

// Product is one catalog record. The catalog is read-only at runtime:
// records are loaded once per process and never mutated.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	SoldOut     bool   `json:"soldOut,omitempty"`
}

// MaxPurchasable returns the per-order quantity cap for the product.
// Records without an explicit quantity default to 1.
func (p Product) MaxPurchasable() int {
	if p.Quantity < 1 {
		return 1
	}
	return p.Quantity
}
