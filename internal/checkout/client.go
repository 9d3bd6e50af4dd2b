package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"storefront/internal/domain"
)

// ErrNoRedirectURL reports a session response without a url field.
var ErrNoRedirectURL = errors.New("checkout response has no redirect url")

// Initiator is the client half of checkout: it validates against the
// local catalog snapshot, posts the session request and hands back the
// redirect URL for navigation.
type Initiator struct {
	baseURL    string
	httpClient *http.Client
	catalog    productCatalog
	logger     *log.Logger
}

func NewInitiator(baseURL string, httpClient *http.Client, catalog productCatalog, logger *log.Logger) *Initiator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Initiator{baseURL: baseURL, httpClient: httpClient, catalog: catalog, logger: logger}
}

// InstantCheckout starts a single-item session, bypassing the cart.
func (i *Initiator) InstantCheckout(ctx context.Context, id string) (string, error) {
	if err := i.catalog.WhenReady(ctx); err != nil {
		return "", fmt.Errorf("wait for catalog: %w", err)
	}
	if _, ok := i.catalog.Lookup(id); !ok {
		i.logger.Printf("checkout: invalid product id %s", id)
		return "", fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return i.createSession(ctx, []domain.CheckoutItem{{ID: id, Quantity: 1}})
}

// CheckoutCart starts a session for the full cart. An empty cart is
// rejected before any network call.
func (i *Initiator) CheckoutCart(ctx context.Context, items []domain.CartItem) (string, error) {
	if len(items) == 0 {
		return "", domain.ErrEmptyCart
	}
	req := make([]domain.CheckoutItem, 0, len(items))
	for _, item := range items {
		req = append(req, domain.CheckoutItem{ID: item.ID, Quantity: item.Quantity})
	}
	return i.createSession(ctx, req)
}

func (i *Initiator) createSession(ctx context.Context, items []domain.CheckoutItem) (string, error) {
	body, err := json.Marshal(Request{Items: items})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+"/api/create-checkout-session", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		i.logger.Printf("checkout: session request error=%v", err)
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode checkout response: %w", err)
	}
	if payload.URL == "" {
		i.logger.Printf("checkout: no redirect url status=%d error=%q", resp.StatusCode, payload.Error)
		if payload.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrNoRedirectURL, payload.Error)
		}
		return "", ErrNoRedirectURL
	}
	return payload.URL, nil
}
