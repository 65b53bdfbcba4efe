package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type HomeResponse struct {
	Featured   []ProductResponse  `json:"featured"`
	Categories []CategoryResponse `json:"categories"`
}

type ListingResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Products   []ProductResponse  `json:"products"`
	Category   string             `json:"category"`
	Sort       string             `json:"sort"`
}

type ProductDetailResponse struct {
	Product ProductResponse   `json:"product"`
	Related []ProductResponse `json:"related"`
	JSONLD  ProductJSONLD     `json:"jsonLd"`
}

// ProductJSONLD is the schema.org Product markup embedded in detail pages.
type ProductJSONLD struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Brand       JSONLDBrand    `json:"brand"`
	Offers      AggregateOffer `json:"offers"`
}

type JSONLDBrand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type AggregateOffer struct {
	Type          string          `json:"@type"`
	PriceCurrency string          `json:"priceCurrency"`
	LowPrice      decimal.Decimal `json:"lowPrice"`
	HighPrice     decimal.Decimal `json:"highPrice"`
	OfferCount    int             `json:"offerCount"`
}

// SitemapEntry is one <url> of /sitemap.xml.
type SitemapEntry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}
