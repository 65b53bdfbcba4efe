package handler

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/abdullah9786/nawab-products/internal/response"
	"github.com/abdullah9786/nawab-products/internal/service"

	"github.com/gin-gonic/gin"
)

type StorefrontHandler struct {
	svc     service.StorefrontService
	siteURL string
}

func NewStorefrontHandler(svc service.StorefrontService, siteURL string) *StorefrontHandler {
	return &StorefrontHandler{svc: svc, siteURL: strings.TrimRight(siteURL, "/")}
}

func (h *StorefrontHandler) Home(c *gin.Context) {
	resp, err := h.svc.Home(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load home page")
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}

func (h *StorefrontHandler) Products(c *gin.Context) {
	resp, err := h.svc.Listing(c.Request.Context(), c.Query("category"), c.Query("sort"))
	if err != nil {
		respondError(c, err, "Failed to load products")
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}

func (h *StorefrontHandler) Product(c *gin.Context) {
	resp, err := h.svc.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to load product")
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

func (h *StorefrontHandler) Sitemap(c *gin.Context) {
	entries, err := h.svc.Sitemap(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build sitemap")
		return
	}

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		loc := h.siteURL + e.Path
		if e.Path == "/" {
			loc = h.siteURL
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    e.LastMod.UTC().Format(time.RFC3339),
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}

	body, err := xml.Marshal(set)
	if err != nil {
		respondError(c, err, "Failed to build sitemap")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
