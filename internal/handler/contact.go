package handler

import (
	"net/http"

	"github.com/abdullah9786/nawab-products/internal/dto"
	"github.com/abdullah9786/nawab-products/internal/middleware"
	"github.com/abdullah9786/nawab-products/internal/response"
	"github.com/abdullah9786/nawab-products/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct{ svc service.ContactService }

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.Submit(c.Request.Context(), req, c.GetString(middleware.RequestIDKey)); err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusAccepted, response.OKMessage(nil, "Thank you! We will get back to you shortly."))
}
