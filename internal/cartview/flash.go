package cartview

import "time"

// FlashDuration is how long a transient button acknowledgment stays on
// screen before the control is restored.
const FlashDuration = 1200 * time.Millisecond

// Flash describes a transient acknowledgment on the triggering control.
// It is a visual effect only, never part of the data contract.
type Flash struct {
	Label string
	Icon  string
}

var (
	AddedToCart   = Flash{Label: "Added to Cart!", Icon: "check-circle-fill"}
	AlreadyInCart = Flash{Label: "Already in Cart", Icon: "exclamation-circle-fill"}
	Redirecting   = Flash{Label: "Redirecting…", Icon: "check-circle-fill"}
)
