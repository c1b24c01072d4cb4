package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

type CartHandler struct {
	carts *usecase.CartService
}

func NewCartHandler(carts *usecase.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Get(c *gin.Context) {
	sess, _ := middleware.Session(c)
	c.JSON(http.StatusOK, toCartJSON(h.carts.View(sess)))
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.carts.Add(sess, req.ProductID, req.Quantity); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartJSON(h.carts.View(sess)))
}

type updateItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.carts.UpdateQuantity(sess, c.Param("productId"), req.Delta)
	c.JSON(http.StatusOK, toCartJSON(h.carts.View(sess)))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sess, _ := middleware.Session(c)

	h.carts.Remove(sess, c.Param("productId"))
	c.JSON(http.StatusOK, toCartJSON(h.carts.View(sess)))
}
