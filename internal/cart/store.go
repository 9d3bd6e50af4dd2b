package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"
)

const (
	defaultName  = "Unnamed Product"
	defaultImage = "/media/placeholder.png"
)

type productCatalog interface {
	WhenReady(ctx context.Context) error
	Lookup(id string) (domain.Product, bool)
}

// Store owns the cart line items. Every successful mutation persists
// the full sequence and then invokes the change hook, which the view
// layer uses to repaint the badge and dropdown.
type Store struct {
	storage  Storage
	catalog  productCatalog
	logger   *log.Logger
	onChange func(items []domain.CartItem)
}

func New(storage Storage, catalog productCatalog, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{storage: storage, catalog: catalog, logger: logger}
}

// OnChange registers the render hook fired after every Save.
func (s *Store) OnChange(fn func(items []domain.CartItem)) {
	s.onChange = fn
}

// Items loads the persisted cart. Absent or malformed content yields an
// empty cart; parse errors are swallowed, not surfaced.
func (s *Store) Items() []domain.CartItem {
	data, err := s.storage.Load()
	if err != nil || len(data) == 0 {
		return []domain.CartItem{}
	}
	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Printf("cart: discarding malformed cart data: %v", err)
		return []domain.CartItem{}
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items
}

// Save persists the sequence and triggers the repaint hook.
func (s *Store) Save(items []domain.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serialize cart: %w", err)
	}
	if err := s.storage.Save(data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	if s.onChange != nil {
		s.onChange(items)
	}
	return nil
}

// Add puts quantity units of the product into the cart. A repeat add
// does not stack: the existing line is topped up to the product's
// max-purchasable quantity and ErrAlreadyInCart is reported so the UI
// can show the conflict acknowledgment. The cart is never mutated for
// an unknown product id.
func (s *Store) Add(ctx context.Context, id string, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be positive")
	}
	if err := s.catalog.WhenReady(ctx); err != nil {
		return fmt.Errorf("wait for catalog: %w", err)
	}

	product, ok := s.catalog.Lookup(id)
	if !ok {
		s.logger.Printf("cart: invalid product id %s", id)
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	items := s.Items()
	max := product.MaxPurchasable()

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Quantity = max
		if err := s.Save(items); err != nil {
			return err
		}
		return domain.ErrAlreadyInCart
	}

	if quantity > max {
		quantity = max
	}
	items = append(items, newLine(product, quantity))
	return s.Save(items)
}

// QuickAdd is the catalog-grid "quick add" entry point: one unit, and a
// conflict leaves the cart untouched.
func (s *Store) QuickAdd(ctx context.Context, id string) error {
	if err := s.catalog.WhenReady(ctx); err != nil {
		return fmt.Errorf("wait for catalog: %w", err)
	}

	product, ok := s.catalog.Lookup(id)
	if !ok {
		s.logger.Printf("cart: invalid product id %s", id)
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	items := s.Items()
	for _, item := range items {
		if item.ID == id {
			return domain.ErrAlreadyInCart
		}
	}

	items = append(items, newLine(product, 1))
	return s.Save(items)
}

// Remove filters the line out by id and saves unconditionally, so a
// remove of an absent id still repaints with unchanged content.
func (s *Store) Remove(id string) error {
	items := s.Items()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.Save(kept)
}

func newLine(p domain.Product, quantity int) domain.CartItem {
	item := domain.CartItem{
		ID:         p.ID,
		Quantity:   quantity,
		Name:       p.Name,
		Image:      p.Image,
		PriceCents: p.PriceCents,
	}
	if item.Name == "" {
		item.Name = defaultName
	}
	if item.Image == "" {
		item.Image = defaultImage
	}
	return item
}
