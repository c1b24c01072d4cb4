package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

type NavigationHandler struct {
	nav *usecase.Navigator
}

func NewNavigationHandler(nav *usecase.Navigator) *NavigationHandler {
	return &NavigationHandler{nav: nav}
}

func (h *NavigationHandler) State(c *gin.Context) {
	sess, _ := middleware.Session(c)
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}

type gotoRequest struct {
	Page string `json:"page" binding:"required"`
}

func (h *NavigationHandler) Goto(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req gotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.nav.NavigateTo(sess, usecase.Page(req.Page)); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}

func (h *NavigationHandler) OpenProduct(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.nav.OpenProduct(sess, c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}

func (h *NavigationHandler) OpenVendor(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.nav.OpenVendor(sess, c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}

func (h *NavigationHandler) StartChat(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.nav.StartChat(sess, c.Param("productId")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}

func (h *NavigationHandler) OpenCreator(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.nav.OpenCreatorOverlay(sess, c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}

func (h *NavigationHandler) CloseCreator(c *gin.Context) {
	sess, _ := middleware.Session(c)

	h.nav.CloseCreatorOverlay(sess)
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}

func (h *NavigationHandler) ViewStorefront(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.nav.ViewStorefront(sess); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}

func (h *NavigationHandler) Back(c *gin.Context) {
	sess, _ := middleware.Session(c)

	h.nav.GoBack(sess)
	c.JSON(http.StatusOK, toNavJSON(h.nav.State(sess)))
}
