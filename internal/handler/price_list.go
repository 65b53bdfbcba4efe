package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/abdullah9786/nawab-products/internal/infra"
	"github.com/abdullah9786/nawab-products/internal/pricing"
	"github.com/abdullah9786/nawab-products/internal/service"

	"github.com/gin-gonic/gin"
)

type PriceListHandler struct {
	svc       service.ProductService
	brand     string
	formatter *pricing.Formatter
}

func NewPriceListHandler(svc service.ProductService, brand string, f *pricing.Formatter) *PriceListHandler {
	return &PriceListHandler{svc: svc, brand: brand, formatter: f}
}

// Download streams the printable price list of every active product.
func (h *PriceListHandler) Download(c *gin.Context) {
	products, err := h.svc.PriceList(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build price list")
		return
	}

	now := time.Now()
	var buf bytes.Buffer
	err = infra.WritePriceList(&buf, infra.PriceListInput{
		Brand:       h.brand,
		GeneratedAt: now,
		Products:    products,
		Formatter:   h.formatter,
	})
	if err != nil {
		respondError(c, err, "Failed to build price list")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="price-list-%s.pdf"`, now.Format("2006-01-02")))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
