package soldout

import (
	"context"
	"testing"

	"storefront/internal/domain"
)

type stubCatalog struct {
	products map[string]domain.Product
	readyErr error
}

func (s *stubCatalog) WhenReady(_ context.Context) error {
	return s.readyErr
}

func (s *stubCatalog) Lookup(id string) (domain.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

func TestProductIDFromPath(t *testing.T) {
	cases := []struct {
		path string
		id   string
		ok   bool
	}{
		{"/products/lavender-candle", "lavender-candle", true},
		{"/shop/products/c1", "c1", true},
		{"/products/", "", false},
		{"/about", "", false},
		{"/", "", false},
	}
	for _, tc := range cases {
		id, ok := ProductIDFromPath(tc.path)
		if id != tc.id || ok != tc.ok {
			t.Errorf("ProductIDFromPath(%q) = (%q, %v), want (%q, %v)", tc.path, id, ok, tc.id, tc.ok)
		}
	}
}

func TestEvaluate_SoldOutProduct(t *testing.T) {
	gate := NewGate(&stubCatalog{products: map[string]domain.Product{
		"c1": {ID: "c1", Name: "Candle", SoldOut: true},
	}})
	ov, err := gate.Evaluate(context.Background(), "/products/c1")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ov == nil || !ov.Disabled {
		t.Fatalf("expected disabled override, got %+v", ov)
	}
	if ov.AddLabel != "Sold Out" || ov.BuyLabel != "Unavailable" {
		t.Fatalf("unexpected labels %+v", ov)
	}
}

func TestEvaluate_NoOpCases(t *testing.T) {
	gate := NewGate(&stubCatalog{products: map[string]domain.Product{
		"c1": {ID: "c1", Name: "Candle"},
	}})

	for _, path := range []string{"/about", "/products/ghost", "/products/c1"} {
		ov, err := gate.Evaluate(context.Background(), path)
		if err != nil {
			t.Fatalf("evaluate %s: %v", path, err)
		}
		if ov != nil {
			t.Fatalf("expected no override for %s, got %+v", path, ov)
		}
	}
}

func TestEvaluate_PropagatesReadinessError(t *testing.T) {
	gate := NewGate(&stubCatalog{readyErr: context.DeadlineExceeded})
	if _, err := gate.Evaluate(context.Background(), "/products/c1"); err == nil {
		t.Fatalf("expected readiness error")
	}
}
