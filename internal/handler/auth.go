package handler

import (
	"net/http"

	"github.com/abdullah9786/nawab-products/internal/config"
	"github.com/abdullah9786/nawab-products/internal/dto"
	"github.com/abdullah9786/nawab-products/internal/middleware"
	"github.com/abdullah9786/nawab-products/internal/response"
	"github.com/abdullah9786/nawab-products/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc          service.AuthService
	secureCookie bool
	maxAge       int
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		svc:          svc,
		secureCookie: cfg.SessionCookieSecure,
		maxAge:       int(cfg.SessionTTL().Seconds()),
	}
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	h.setSessionCookie(c, resp.Token, h.maxAge)
	c.JSON(http.StatusOK, response.OK(resp))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, response.OKMessage(nil, "Signed out"))
}

// Session returns the admin behind the current session. It runs behind
// SessionAuth.
func (h *AuthHandler) Session(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}
	c.JSON(http.StatusOK, response.OK(service.AdminFromClaims(claims)))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.secureCookie, true)
}
