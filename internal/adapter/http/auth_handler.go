package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nuelxcodev/luxe/configs"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	"github.com/nuelxcodev/luxe/internal/logging"
	"github.com/nuelxcodev/luxe/internal/security"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

type AuthHandler struct {
	cfg      configs.Config
	catalog  usecase.Catalog
	sessions usecase.SessionRepo
	nav      *usecase.Navigator
}

func NewAuthHandler(cfg configs.Config, catalog usecase.Catalog, sessions usecase.SessionRepo, nav *usecase.Navigator) *AuthHandler {
	return &AuthHandler{cfg: cfg, catalog: catalog, sessions: sessions, nav: nav}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   int64   `json:"expires_in"`
	Nav         navJSON `json:"nav"`
}

// Login verifies demo credentials and opens a fresh session. The artificial
// delay preserves the feel of a real credential round trip.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, ok := security.Verify(req.Email, req.Password); !ok {
		logging.From(c).Warn("login_rejected", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if d := h.cfg.Auth.LoginDelay; d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-c.Request.Context().Done():
			c.Status(http.StatusRequestTimeout)
			return
		case <-t.C:
		}
	}

	sess := usecase.NewSession(h.catalog.DemoUser(), h.catalog.OrderHistory(), h.catalog.Notifications())
	h.nav.Login(sess)
	h.sessions.Put(sess)

	h.issueToken(c, sess)
}

// Guest opens an unauthenticated browsing session.
func (h *AuthHandler) Guest(c *gin.Context) {
	sess := usecase.NewSession(h.catalog.DemoUser(), h.catalog.OrderHistory(), h.catalog.Notifications())
	h.nav.ExploreAsGuest(sess)
	h.sessions.Put(sess)

	h.issueToken(c, sess)
}

// Logout tears down the session entirely; the token becomes useless even
// though it has not expired.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}
	h.nav.Logout(sess)
	h.sessions.Delete(sess.ID)
	logging.From(c).Info("session_closed", "session", sess.ID)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) issueToken(c *gin.Context, sess *usecase.Session) {
	now := time.Now()
	ttl := h.cfg.Security.TTL
	claims := jwt.MapClaims{
		"iss": h.cfg.Security.Issuer,
		"aud": h.cfg.Security.Audience,
		"sub": sess.User.ID,
		"sid": sess.ID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Security.JWTSecret))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		Nav:         toNavJSON(sess.Nav),
	})
}
