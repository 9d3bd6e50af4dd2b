package httpserver

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

// catalogReadyTimeout bounds how long a request waits for the initial
// catalog load before reporting the service unavailable.
const catalogReadyTimeout = 2 * time.Second

func productsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), catalogReadyTimeout)
		defer cancel()
		if err := svc.WhenReady(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not available"})
			return
		}
		products := svc.Products()
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}
