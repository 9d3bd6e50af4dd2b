package checkout

import (
	"context"
	"io"
	"log"

	"storefront/internal/domain"
)

// Request is the checkout-session request body.
type Request struct {
	Items []domain.CheckoutItem `json:"items"`
}

// Line is one provider line item. UnitAmountCents always comes from the
// server-side catalog price; client-supplied prices are never trusted.
type Line struct {
	Name            string
	UnitAmountCents int64
	Quantity        int64
}

// SessionInput carries everything the payment provider needs to open a
// hosted checkout session.
type SessionInput struct {
	Lines      []Line
	SuccessURL string
	CancelURL  string
}

// SessionProvider opens a hosted checkout session and returns its
// redirect URL.
type SessionProvider interface {
	CreateSession(ctx context.Context, in SessionInput) (string, error)
}

type productCatalog interface {
	WhenReady(ctx context.Context) error
	Lookup(id string) (domain.Product, bool)
}

// Service builds checkout sessions from the authoritative catalog.
type Service struct {
	catalog    productCatalog
	provider   SessionProvider
	successURL string
	cancelURL  string
	logger     *log.Logger
}

func New(catalog productCatalog, provider SessionProvider, successURL, cancelURL string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		catalog:    catalog,
		provider:   provider,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// CreateSession validates the request, resolves every item against the
// catalog and opens a provider session. The whole request fails if any
// id is unknown; no partial session is created.
func (s *Service) CreateSession(ctx context.Context, req Request) (string, error) {
	if len(req.Items) == 0 {
		return "", domain.ErrEmptyCart
	}
	if err := s.catalog.WhenReady(ctx); err != nil {
		return "", err
	}

	lines := make([]Line, 0, len(req.Items))
	for _, item := range req.Items {
		product, ok := s.catalog.Lookup(item.ID)
		if !ok {
			return "", &domain.UnknownProductError{ID: item.ID}
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lines = append(lines, Line{
			Name:            product.Name,
			UnitAmountCents: product.PriceCents,
			Quantity:        int64(quantity),
		})
	}

	url, err := s.provider.CreateSession(ctx, SessionInput{
		Lines:      lines,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	})
	if err != nil {
		s.logger.Printf("checkout: create session error=%v", err)
		return "", err
	}
	s.logger.Printf("checkout: session created lines=%d", len(lines))
	return url, nil
}
