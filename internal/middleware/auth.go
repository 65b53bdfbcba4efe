package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/abdullah9786/nawab-products/internal/response"
	"github.com/abdullah9786/nawab-products/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ClaimsKey = "claims"
	// SessionCookie carries the admin session token for browser clients.
	SessionCookie = "nk_session"
)

// TokenParser validates a session token and returns its claims.
type TokenParser interface {
	ParseToken(token string) (*service.SessionClaims, error)
}

// SessionAuth rejects requests without a valid admin session. The token is
// read from "Authorization: Bearer" first, then from the session cookie.
func SessionAuth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := resolveSession(c, p)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// OptionalSession attaches the session claims when present and valid but
// never rejects the request.
func OptionalSession(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := resolveSession(c, p); claims != nil {
			c.Set(ClaimsKey, claims)
		}
		c.Next()
	}
}

// PageGuard protects admin pages: requests without a session are redirected
// to loginPath, which itself stays reachable.
func PageGuard(p TokenParser, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == loginPath || strings.HasPrefix(path, loginPath+"/") {
			c.Next()
			return
		}
		claims := resolveSession(c, p)
		if claims == nil {
			c.Redirect(http.StatusFound, loginPath+"?callbackUrl="+url.QueryEscape(path))
			c.Abort()
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the session claims, or nil for anonymous requests.
func GetClaims(c *gin.Context) *service.SessionClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.SessionClaims)
	return claims
}

func resolveSession(c *gin.Context, p TokenParser) *service.SessionClaims {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		token, _ = c.Cookie(SessionCookie)
	}
	if token == "" {
		return nil
	}
	claims, err := p.ParseToken(token)
	if err != nil {
		return nil
	}
	return claims
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
