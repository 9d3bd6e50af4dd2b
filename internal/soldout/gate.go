package soldout

import (
	"context"
	"regexp"

	"storefront/internal/domain"
)

var productPathRe = regexp.MustCompile(`/products/([^/]+)$`)

// ProductIDFromPath extracts the product id from a product-detail page
// path, the last segment of "/products/{id}".
func ProductIDFromPath(path string) (string, bool) {
	m := productPathRe.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Override describes the disabled state applied to the purchase
// controls of a sold-out product page.
type Override struct {
	Disabled bool
	AddLabel string
	BuyLabel string
}

type productCatalog interface {
	WhenReady(ctx context.Context) error
	Lookup(id string) (domain.Product, bool)
}

// Gate disables purchase actions on product-detail pages whose catalog
// record is marked sold out.
type Gate struct {
	catalog productCatalog
}

func NewGate(catalog productCatalog) *Gate {
	return &Gate{catalog: catalog}
}

// Evaluate returns the control override for the given page path, or nil
// when the path is not a product-detail page, the product is unknown,
// or the product is available.
func (g *Gate) Evaluate(ctx context.Context, path string) (*Override, error) {
	id, ok := ProductIDFromPath(path)
	if !ok {
		return nil, nil
	}
	if err := g.catalog.WhenReady(ctx); err != nil {
		return nil, err
	}
	product, ok := g.catalog.Lookup(id)
	if !ok || !product.SoldOut {
		return nil, nil
	}
	return &Override{
		Disabled: true,
		AddLabel: "Sold Out",
		BuyLabel: "Unavailable",
	}, nil
}
