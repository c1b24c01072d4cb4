package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

type CheckoutHandler struct {
	flow *usecase.CheckoutFlow
}

func NewCheckoutHandler(flow *usecase.CheckoutFlow) *CheckoutHandler {
	return &CheckoutHandler{flow: flow}
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	sess, _ := middleware.Session(c)

	co, ok := h.flow.State(sess)
	if !ok {
		respondErr(c, usecase.ErrNoCheckout)
		return
	}
	c.JSON(http.StatusOK, toCheckoutJSON(co))
}

func (h *CheckoutHandler) Begin(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.flow.Begin(sess); err != nil {
		respondErr(c, err)
		return
	}
	co, _ := h.flow.State(sess)
	c.JSON(http.StatusCreated, toCheckoutJSON(co))
}

type checkoutStepRequest struct {
	Fields map[string]string `json:"fields"`
}

func (h *CheckoutHandler) Next(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req checkoutStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.flow.Next(sess, req.Fields); err != nil {
		respondErr(c, err)
		return
	}
	co, _ := h.flow.State(sess)
	c.JSON(http.StatusOK, toCheckoutJSON(co))
}

func (h *CheckoutHandler) Back(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.flow.Back(sess); err != nil {
		respondErr(c, err)
		return
	}
	co, _ := h.flow.State(sess)
	c.JSON(http.StatusOK, toCheckoutJSON(co))
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.flow.Cancel(sess); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PlaceOrder blocks through the simulated processing delay; a cancel or
// logout racing the delay discards the order.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sess, _ := middleware.Session(c)

	order, err := h.flow.PlaceOrder(c.Request.Context(), sess)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderJSON(order))
}
