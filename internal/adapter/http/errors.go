package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domain "github.com/nuelxcodev/luxe/internal/entity"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

// respondErr maps use case errors onto HTTP statuses. Unknown errors are a
// 500 with a generic body so internals never leak to the client.
func respondErr(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, usecase.ErrProductNotFound),
		errors.Is(err, usecase.ErrVendorNotFound),
		errors.Is(err, usecase.ErrCreatorNotFound),
		errors.Is(err, usecase.ErrContactNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, usecase.ErrUnknownPage),
		errors.Is(err, usecase.ErrNoSelection),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrNotAtReview),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrUnknownPreference):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	case errors.Is(err, usecase.ErrNoCheckout):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, usecase.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, usecase.ErrCheckoutDiscarded):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})

	case errors.Is(err, usecase.ErrNotAuthenticated):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
