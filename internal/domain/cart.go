package domain

// CartItem is one cart line. Name, Image and PriceCents are a snapshot
// copied from the Product when the line was added; they are not
// refreshed if the catalog record changes later.
type CartItem struct {
	ID         string `json:"id"`
	Quantity   int    `json:"quantity"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	PriceCents int64  `json:"price"`
}

// CheckoutItem is one entry of a checkout-session request. Quantity is
// optional on the wire; zero means "one".
type CheckoutItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity,omitempty"`
}
