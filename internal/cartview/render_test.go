package cartview

import (
	"strings"
	"testing"

	"storefront/internal/domain"
)

func TestSummarize(t *testing.T) {
	items := []domain.CartItem{
		{ID: "a", Quantity: 2, PriceCents: 1000},
		{ID: "b", Quantity: 1, PriceCents: 599},
	}
	s := Summarize(items)
	if s.Count != 3 {
		t.Fatalf("expected count 3, got %d", s.Count)
	}
	if s.TotalCents != 2599 {
		t.Fatalf("expected total 2599, got %d", s.TotalCents)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{2599, "$25.99"},
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.cents); got != tc.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestRenderBadge(t *testing.T) {
	badge := RenderBadge(nil)
	if badge.Visible {
		t.Fatalf("badge must be hidden for an empty cart")
	}
	badge = RenderBadge([]domain.CartItem{{ID: "a", Quantity: 2}, {ID: "b", Quantity: 3}})
	if !badge.Visible || badge.Text != "5" {
		t.Fatalf("unexpected badge %+v", badge)
	}
}

func TestRenderDropdown_Empty(t *testing.T) {
	d, err := RenderDropdown(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Empty || d.ShowCheckout {
		t.Fatalf("expected empty dropdown with hidden checkout, got %+v", d)
	}
	if !strings.Contains(string(d.HTML), "Cart is empty") {
		t.Fatalf("expected placeholder message, got %s", d.HTML)
	}
}

func TestRenderDropdown_Rows(t *testing.T) {
	items := []domain.CartItem{
		{ID: "c1", Quantity: 2, Name: "Lavender Candle", Image: "/media/c1.jpg", PriceCents: 1000},
		{ID: "s1", Quantity: 1, Name: "Rose Soap", Image: "/media/s1.jpg", PriceCents: 599},
	}
	d, err := RenderDropdown(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Empty || !d.ShowCheckout {
		t.Fatalf("expected non-empty dropdown with checkout, got %+v", d)
	}
	html := string(d.HTML)
	for _, want := range []string{"Lavender Candle", "Qty: 2", "Rose Soap", `data-cart-remove="c1"`, "$25.99"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in dropdown html:\n%s", want, html)
		}
	}
}

func TestRenderDropdown_Idempotent(t *testing.T) {
	items := []domain.CartItem{{ID: "c1", Quantity: 1, Name: "Candle", PriceCents: 100}}
	first, err := RenderDropdown(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := RenderDropdown(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.HTML != second.HTML {
		t.Fatalf("render is not idempotent:\n%s\n---\n%s", first.HTML, second.HTML)
	}
}

func TestRenderDropdown_EscapesProductText(t *testing.T) {
	items := []domain.CartItem{{ID: "x", Quantity: 1, Name: `<script>alert("x")</script>`, PriceCents: 1}}
	d, err := RenderDropdown(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(d.HTML), "<script>") {
		t.Fatalf("product name must be escaped:\n%s", d.HTML)
	}
}
