package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	domain "github.com/nuelxcodev/luxe/internal/entity"
	"github.com/nuelxcodev/luxe/internal/usecase"
	"github.com/shopspring/decimal"
)

type ProfileHandler struct {
	profiles *usecase.ProfileService
}

func NewProfileHandler(profiles *usecase.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	sess, _ := middleware.Session(c)
	c.JSON(http.StatusOK, toUserJSON(h.profiles.User(sess)))
}

type updateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.profiles.UpdateProfile(sess, usecase.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	c.JSON(http.StatusOK, toUserJSON(h.profiles.User(sess)))
}

func (h *ProfileHandler) TogglePreference(c *gin.Context) {
	sess, _ := middleware.Session(c)

	if err := h.profiles.TogglePreference(sess, domain.PreferenceKey(c.Param("key"))); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserJSON(h.profiles.User(sess)))
}

type walletJSON struct {
	Balance         string            `json:"balance"`
	PendingEarnings string            `json:"pendingEarnings"`
	TotalEarned     string            `json:"totalEarned"`
	Transactions    []transactionJSON `json:"transactions"`
}

func (h *ProfileHandler) Wallet(c *gin.Context) {
	sess, _ := middleware.Session(c)

	w := h.profiles.Wallet(sess)
	c.JSON(http.StatusOK, walletJSON{
		Balance:         w.Balance.StringFixed(2),
		PendingEarnings: w.PendingEarnings.StringFixed(2),
		TotalEarned:     w.TotalEarned.StringFixed(2),
		Transactions:    toTransactionsJSON(w.Transactions),
	})
}

type withdrawRequest struct {
	Amount string `json:"amount" binding:"required"`
}

func (h *ProfileHandler) Withdraw(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.profiles.Withdraw(sess, amount); err != nil {
		respondErr(c, err)
		return
	}

	w := h.profiles.Wallet(sess)
	c.JSON(http.StatusOK, walletJSON{
		Balance:         w.Balance.StringFixed(2),
		PendingEarnings: w.PendingEarnings.StringFixed(2),
		TotalEarned:     w.TotalEarned.StringFixed(2),
		Transactions:    toTransactionsJSON(w.Transactions),
	})
}

// CopyReferral puts the join link on the system clipboard. The outcome
// lands in the notice queue either way, so the response is always 200.
func (h *ProfileHandler) CopyReferral(c *gin.Context) {
	sess, _ := middleware.Session(c)

	h.profiles.CopyReferralLink(sess)
	c.JSON(http.StatusOK, gin.H{"link": h.profiles.ReferralLink(sess)})
}

func (h *ProfileHandler) Orders(c *gin.Context) {
	sess, _ := middleware.Session(c)
	c.JSON(http.StatusOK, gin.H{"orders": toOrdersJSON(sess.ListOrders())})
}

func (h *ProfileHandler) Notifications(c *gin.Context) {
	sess, _ := middleware.Session(c)
	c.JSON(http.StatusOK, gin.H{"notifications": toNotificationsJSON(sess.ListNotifications())})
}

func (h *ProfileHandler) MarkNotificationRead(c *gin.Context) {
	sess, _ := middleware.Session(c)

	sess.MarkNotificationRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"notifications": toNotificationsJSON(sess.ListNotifications())})
}

func (h *ProfileHandler) Notices(c *gin.Context) {
	sess, _ := middleware.Session(c)
	c.JSON(http.StatusOK, gin.H{"notices": toNoticesJSON(sess.DrainNotices())})
}
