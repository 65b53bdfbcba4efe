package handler

import (
	"net/http"

	"github.com/abdullah9786/nawab-products/internal/response"
	"github.com/abdullah9786/nawab-products/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the bootstrap endpoints used before the first login.
type AdminHandler struct{ svc service.AuthService }

func NewAdminHandler(svc service.AuthService) *AdminHandler { return &AdminHandler{svc: svc} }

// Seed creates the configured admin account once. Later calls report the
// existing admin without changing anything.
func (h *AdminHandler) Seed(c *gin.Context) {
	resp, created, err := h.svc.SeedAdmin(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to seed admin")
		return
	}
	if !created {
		c.JSON(http.StatusOK, response.Envelope{
			Success: false,
			Data:    resp,
			Message: "Admin user already exists. Login with existing credentials.",
		})
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(resp, "Admin user created successfully!"))
}

func (h *AdminHandler) CheckAdmin(c *gin.Context) {
	resp, err := h.svc.AdminStatus(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to check admin")
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}
