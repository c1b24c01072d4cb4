package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nuelxcodev/luxe/configs"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

const sessionKey = "app_session"

type Authz struct {
	cfg      configs.Config
	sessions usecase.SessionRepo
}

func NewAuthz(cfg configs.Config, sessions usecase.SessionRepo) *Authz {
	return &Authz{cfg: cfg, sessions: sessions}
}

// Require validates the bearer token and resolves the live app session it
// names. A valid token whose session is gone (logout, restart) is rejected
// the same as a bad token: all session state is volatile.
func (a *Authz) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, "invalid_request", "missing bearer token")
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(a.cfg.Security.JWTSecret), nil
		}, jwt.WithLeeway(30*time.Second)) // small clock skew

		if err != nil || !token.Valid {
			unauth(c, "invalid_token", "invalid jwt")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauth(c, "invalid_token", "claims parsing error")
			return
		}
		if claims["iss"] != a.cfg.Security.Issuer || claims["aud"] != a.cfg.Security.Audience {
			unauth(c, "invalid_token", "iss/aud mismatch")
			return
		}

		sid, _ := claims["sid"].(string)
		sess, ok := a.sessions.Get(sid)
		if !ok {
			unauth(c, "invalid_token", "session expired")
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Session returns the resolved app session for an authorized request.
func Session(c *gin.Context) (*usecase.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*usecase.Session)
	return s, ok
}

func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "error_description": desc})
}
