package httpserver

import (
	"errors"
	"log"
	"net/http"

	"storefront/internal/checkout"
	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

func checkoutHandler(svc CheckoutService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no items provided"})
			return
		}

		url, err := svc.CreateSession(c.Request.Context(), req)
		if err != nil {
			var unknown *domain.UnknownProductError
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "no items provided"})
			case errors.As(err, &unknown):
				c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
			default:
				logger.Printf("checkout handler: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
