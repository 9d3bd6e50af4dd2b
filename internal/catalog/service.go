package catalog

import (
	"context"
	"io"
	"log"
	"sync"

	"storefront/internal/domain"
)

// Service owns the in-memory catalog snapshot. The snapshot is loaded
// once and readiness is signalled exactly once by closing the ready
// channel; every waiter observes the same signal. A failed load never
// signals readiness, so callers must bound WhenReady with a context.
type Service struct {
	source Source
	logger *log.Logger

	mu       sync.RWMutex
	products []domain.Product
	byID     map[string]domain.Product

	ready     chan struct{}
	loadOnce  sync.Once
	readyOnce sync.Once
}

func New(source Source, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		source: source,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start fetches the catalog in the background. Subsequent calls are no-ops.
func (s *Service) Start(ctx context.Context) {
	s.loadOnce.Do(func() {
		go s.load(ctx)
	})
}

// Load fetches the catalog synchronously. Useful for request-scoped
// callers that want the load error instead of a readiness timeout.
func (s *Service) Load(ctx context.Context) error {
	var err error
	s.loadOnce.Do(func() {
		err = s.loadWith(ctx)
	})
	return err
}

func (s *Service) load(ctx context.Context) {
	if err := s.loadWith(ctx); err != nil {
		s.logger.Printf("catalog: failed to load product data: %v", err)
	}
}

func (s *Service) loadWith(ctx context.Context) error {
	products, err := s.source.Fetch(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s.mu.Lock()
	s.products = products
	s.byID = byID
	s.mu.Unlock()

	s.readyOnce.Do(func() { close(s.ready) })
	s.logger.Printf("catalog: loaded %d products", len(products))
	return nil
}

// WhenReady blocks until the catalog snapshot is loaded or the context
// expires. It is the only safe way to sequence lookups after Start.
func (s *Service) WhenReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether the snapshot has been loaded, without blocking.
func (s *Service) Ready() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Lookup returns the product with the given id from the snapshot.
func (s *Service) Lookup(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// Products returns the loaded snapshot. The returned slice must not be
// mutated.
func (s *Service) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}
