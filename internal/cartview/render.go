package cartview

import (
	"fmt"
	"html/template"
	"strings"

	"storefront/internal/domain"
)

// Summary is the aggregate projection of the cart: total unit count and
// total price in minor currency units.
type Summary struct {
	Count      int
	TotalCents int64
}

func Summarize(items []domain.CartItem) Summary {
	var s Summary
	for _, item := range items {
		s.Count += item.Quantity
		s.TotalCents += item.PriceCents * int64(item.Quantity)
	}
	return s
}

// FormatPrice renders minor units as dollars, e.g. 2599 -> "$25.99".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// Badge is the navbar cart-count projection. Hidden exactly when the
// cart holds zero units.
type Badge struct {
	Visible bool
	Text    string
}

func RenderBadge(items []domain.CartItem) Badge {
	count := Summarize(items).Count
	if count == 0 {
		return Badge{}
	}
	return Badge{Visible: true, Text: fmt.Sprintf("%d", count)}
}

// Dropdown is the rendered cart dropdown. ShowCheckout mirrors the
// visibility of the checkout affordance: hidden for an empty cart.
type Dropdown struct {
	Empty        bool
	ShowCheckout bool
	HTML         template.HTML
}

const emptyMessage = `<p class="cart-empty">Cart is empty</p>`

var rowTmpl = template.Must(template.New("row").Parse(`<div class="cart-row">
  <img class="cart-thumb" src="{{.Image}}" alt="{{.Name}}">
  <div class="cart-line">
    <div class="cart-name">{{.Name}}</div>
    <small class="cart-qty">Qty: {{.Quantity}}</small>
  </div>
  <button type="button" class="cart-remove" aria-label="Remove" data-cart-remove="{{.ID}}"></button>
</div>
`))

var totalTmpl = template.Must(template.New("total").Parse(`<div class="cart-total">
  <strong>Total:</strong>
  <strong>{{.}}</strong>
</div>
`))

// RenderDropdown projects the cart into dropdown markup. It is a pure
// function of the item sequence: calling it twice with equal input
// yields identical output. Remove controls carry a data attribute
// instead of an inline handler so identifiers never get interpolated
// into script text.
func RenderDropdown(items []domain.CartItem) (Dropdown, error) {
	if len(items) == 0 {
		return Dropdown{Empty: true, HTML: template.HTML(emptyMessage)}, nil
	}

	var b strings.Builder
	for _, item := range items {
		row := item
		if row.Name == "" {
			row.Name = "Unnamed Product"
		}
		if row.Image == "" {
			row.Image = "/media/placeholder.png"
		}
		if err := rowTmpl.Execute(&b, row); err != nil {
			return Dropdown{}, fmt.Errorf("render cart row: %w", err)
		}
	}
	if err := totalTmpl.Execute(&b, FormatPrice(Summarize(items).TotalCents)); err != nil {
		return Dropdown{}, fmt.Errorf("render cart total: %w", err)
	}

	return Dropdown{ShowCheckout: true, HTML: template.HTML(b.String())}, nil
}
