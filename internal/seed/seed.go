package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// Apply reads a products.json document and upserts every record.
// Records without an id get a generated one, so the same file can be
// re-applied idempotently only when ids are present in the source.
func Apply(ctx context.Context, r io.Reader, repo ProductWriter, logger *log.Logger) (int, error) {
	var products []domain.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return 0, fmt.Errorf("parse products: %w", err)
	}

	count := 0
	for _, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			p.ID = uuid.NewString()
			if logger != nil {
				logger.Printf("seed: assigned id=%s to product %q", p.ID, p.Name)
			}
		}
		if strings.TrimSpace(p.Name) == "" {
			return count, fmt.Errorf("product %s: name required", p.ID)
		}
		if _, err := repo.Upsert(ctx, p); err != nil {
			return count, fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
		count++
	}
	return count, nil
}
