package httpserver

import (
	"context"
	"log"

	"storefront/internal/checkout"
	"storefront/internal/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogService is the read side of the catalog the routes need.
type CatalogService interface {
	WhenReady(ctx context.Context) error
	Ready() bool
	Products() []domain.Product
}

// CheckoutService opens payment-provider sessions.
type CheckoutService interface {
	CreateSession(ctx context.Context, req checkout.Request) (string, error)
}

// Deps bundles the services the router depends on.
type Deps struct {
	CatalogSvc  CatalogService
	CheckoutSvc CheckoutService
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, deps.CatalogSvc))

	router.GET("/data/products.json", productsHandler(deps.CatalogSvc))
	router.POST("/api/create-checkout-session", checkoutHandler(deps.CheckoutSvc, logger))

	return router, nil
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "X-Request-ID"}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}

// requestIDMiddleware tags every response (and downstream log line)
// with a request id, minting one when the client did not send any.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
