package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain"
)

func TestInstantCheckout_PostsSingleItem(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/create-checkout-session" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example/s1"})
	}))
	defer srv.Close()

	catalog := &stubCatalog{products: map[string]domain.Product{"c1": {ID: "c1", Name: "Candle"}}}
	init := NewInitiator(srv.URL, srv.Client(), catalog, nil)

	url, err := init.InstantCheckout(context.Background(), "c1")
	if err != nil {
		t.Fatalf("instant checkout: %v", err)
	}
	if url != "https://pay.example/s1" {
		t.Fatalf("unexpected redirect url %q", url)
	}
	if len(got.Items) != 1 || got.Items[0].ID != "c1" || got.Items[0].Quantity != 1 {
		t.Fatalf("unexpected request body %+v", got)
	}
}

func TestInstantCheckout_UnknownProductSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Errorf("no request expected for unknown product")
	}))
	defer srv.Close()

	init := NewInitiator(srv.URL, srv.Client(), &stubCatalog{products: map[string]domain.Product{}}, nil)
	_, err := init.InstantCheckout(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckoutCart_EmptyCartRejectedLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Errorf("empty cart must not hit the network")
	}))
	defer srv.Close()

	init := NewInitiator(srv.URL, srv.Client(), &stubCatalog{}, nil)
	_, err := init.CheckoutCart(context.Background(), nil)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutCart_SendsFullCart(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example/s2"})
	}))
	defer srv.Close()

	init := NewInitiator(srv.URL, srv.Client(), &stubCatalog{}, nil)
	items := []domain.CartItem{
		{ID: "c1", Quantity: 2, Name: "Candle", PriceCents: 100},
		{ID: "s1", Quantity: 1, Name: "Soap", PriceCents: 50},
	}
	url, err := init.CheckoutCart(context.Background(), items)
	if err != nil {
		t.Fatalf("checkout cart: %v", err)
	}
	if url != "https://pay.example/s2" {
		t.Fatalf("unexpected url %q", url)
	}
	if len(got.Items) != 2 || got.Items[0].Quantity != 2 || got.Items[1].ID != "s1" {
		t.Fatalf("unexpected request body %+v", got)
	}
}

func TestCheckoutCart_SurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid product ID: ghost"})
	}))
	defer srv.Close()

	init := NewInitiator(srv.URL, srv.Client(), &stubCatalog{}, nil)
	_, err := init.CheckoutCart(context.Background(), []domain.CartItem{{ID: "ghost", Quantity: 1}})
	if !errors.Is(err, ErrNoRedirectURL) {
		t.Fatalf("expected ErrNoRedirectURL, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Fatalf("expected server message in error, got %v", err)
	}
}
