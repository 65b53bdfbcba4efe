package service

import (
	"github.com/abdullah9786/nawab-products/internal/dto"
	"github.com/abdullah9786/nawab-products/internal/model"
	"github.com/abdullah9786/nawab-products/internal/pricing"
)

// Presenter maps models to API responses, rendering price labels with the
// shop's currency formatter.
type Presenter struct {
	prices *pricing.Formatter
}

func NewPresenter(f *pricing.Formatter) *Presenter {
	return &Presenter{prices: f}
}

func (p *Presenter) Product(m model.Product) dto.ProductResponse {
	slabs := make([]dto.PriceSlabResponse, 0, len(m.Prices))
	for _, s := range m.Prices {
		slabs = append(slabs, dto.PriceSlabResponse{
			ID:         s.ID.String(),
			Quantity:   s.Quantity,
			Unit:       s.Unit,
			Price:      s.Price,
			UnitLabel:  pricing.UnitLabel(s.Unit, s.Quantity),
			PriceLabel: p.prices.Format(s.Price),
		})
	}
	images := []string(m.Images)
	if images == nil {
		images = []string{}
	}
	keywords := []string(m.SEO.Keywords)
	if keywords == nil {
		keywords = []string{}
	}
	return dto.ProductResponse{
		ID:               m.ID.String(),
		Name:             m.Name,
		Slug:             m.Slug,
		Category:         m.Category,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		Image:            m.Image,
		Images:           images,
		PricingType:      m.PricingType,
		Prices:           slabs,
		MinPrice:         m.MinPrice,
		MaxPrice:         m.MaxPrice,
		PriceLabel:       p.prices.Label(pricingSlabs(m.Prices)),
		Origin:           m.Origin,
		Aroma:            m.Aroma,
		Texture:          m.Texture,
		UsageTips:        m.UsageTips,
		SEO: dto.SEOResponse{
			Title:       m.SEO.Title,
			Description: m.SEO.Description,
			Keywords:    keywords,
		},
		Featured:  m.Featured,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (p *Presenter) Products(list []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, m := range list {
		out = append(out, p.Product(m))
	}
	return out
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Image:        c.Image,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func mapCategories(list []model.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, mapCategory(c))
	}
	return out
}

func pricingSlabs(prices []model.PriceSlab) []pricing.Slab {
	out := make([]pricing.Slab, len(prices))
	for i, s := range prices {
		out[i] = pricing.Slab{Quantity: s.Quantity, Unit: s.Unit, Price: s.Price}
	}
	return out
}
