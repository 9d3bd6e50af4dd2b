package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"storefront/internal/domain"
)

// Source produces the full product list. Fetch is called once per
// Service lifetime.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) ([]domain.Product, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]domain.Product, error) {
	return f(ctx)
}

// FileSource reads the catalog from a products.json file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return products, nil
}

// HTTPSource fetches the catalog resource over HTTP, the way a page
// load does.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return products, nil
}
