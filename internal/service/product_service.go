package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abdullah9786/nawab-products/internal/cache"
	"github.com/abdullah9786/nawab-products/internal/catalog"
	"github.com/abdullah9786/nawab-products/internal/config"
	"github.com/abdullah9786/nawab-products/internal/dto"
	"github.com/abdullah9786/nawab-products/internal/model"
	"github.com/abdullah9786/nawab-products/internal/pricing"
	"github.com/abdullah9786/nawab-products/internal/repository"
	"github.com/abdullah9786/nawab-products/internal/slug"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const seoDescriptionLen = 160

// Decimal places of the price_slabs.price and quantity columns.
const (
	pricePlaces    = 2
	quantityPlaces = 3
)

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, slug string, includeInactive bool) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, slug string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, slug string) error
	// PriceList returns every active product grouped by category, for the
	// printable price list.
	PriceList(ctx context.Context) ([]model.Product, error)
}

type productService struct {
	products     repository.ProductRepository
	categories   repository.CategoryRepository
	cache        cache.Cache
	present      *Presenter
	brand        string
	defaultImage string
}

func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	c cache.Cache,
	present *Presenter,
	cfg *config.Config,
) ProductService {
	return &productService{
		products:     products,
		categories:   categories,
		cache:        c,
		present:      present,
		brand:        cfg.BrandName,
		defaultImage: cfg.DefaultProductImage,
	}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = slug.Normalize(req.Slug)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	req.PricingType = strings.ToUpper(strings.TrimSpace(req.PricingType))

	if err := aggregate(validate.Struct(&req), nil, slabProblems(req.Prices)...); err != nil {
		return nil, err
	}

	exists, err := s.products.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugTaken
	}

	p := &model.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		Category:         req.Category,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Image:            strings.TrimSpace(req.Image),
		Images:           pq.StringArray(nonNil(req.Images)),
		PricingType:      req.PricingType,
		Origin:           req.Origin,
		Aroma:            req.Aroma,
		Texture:          req.Texture,
		UsageTips:        req.UsageTips,
		IsActive:         true,
	}
	if p.Image == "" {
		p.Image = s.defaultImage
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.SEO = s.seoFor(req.SEO, p.Name, p.Description)
	setPrices(p, req.Prices)

	if err := s.products.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.invalidate(ctx)

	resp := s.present.Product(*p)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, slugParam string, includeInactive bool) (*dto.ProductResponse, error) {
	p, err := s.products.FindBySlug(ctx, slug.Normalize(slugParam), !includeInactive)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	resp := s.present.Product(*p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	spec, err := catalog.Build(ctx, s.categories, catalog.Params{
		CategorySlug:    filter.Category,
		Sort:            filter.Sort,
		Featured:        filter.Featured,
		IncludeInactive: filter.IncludeInactive,
		Page:            filter.Page,
		Limit:           filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	list, total, err := s.products.List(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Data:  s.present.Products(list),
		Total: total,
		Page:  spec.Page,
		Limit: spec.Limit,
	}, nil
}

func (s *productService) Update(ctx context.Context, slugParam string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindBySlug(ctx, slug.Normalize(slugParam), false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := validateUpdate(&req); err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != p.Slug {
		exists, err := s.products.SlugExists(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSlugTaken
		}
		p.Slug = *req.Slug
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ShortDescription != nil {
		p.ShortDescription = req.ShortDescription
	}
	if req.Image != nil {
		p.Image = strings.TrimSpace(*req.Image)
		if p.Image == "" {
			p.Image = s.defaultImage
		}
	}
	if req.Images != nil {
		p.Images = pq.StringArray(req.Images)
	}
	if req.PricingType != nil {
		p.PricingType = *req.PricingType
	}
	if req.Origin != nil {
		p.Origin = req.Origin
	}
	if req.Aroma != nil {
		p.Aroma = req.Aroma
	}
	if req.Texture != nil {
		p.Texture = req.Texture
	}
	if req.UsageTips != nil {
		p.UsageTips = req.UsageTips
	}
	if req.SEO != nil {
		p.SEO = s.seoFor(req.SEO, p.Name, p.Description)
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	replacePrices := req.Prices != nil
	if replacePrices {
		setPrices(p, req.Prices)
	}

	if err := s.products.Update(ctx, p, replacePrices); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidate(ctx)

	resp := s.present.Product(*p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, slugParam string) error {
	n, err := s.products.DeleteBySlug(ctx, slug.Normalize(slugParam))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *productService) PriceList(ctx context.Context) ([]model.Product, error) {
	list, _, err := s.products.List(ctx, catalog.Spec{
		ActiveOnly: true,
		Order:      []catalog.Order{{Column: "category"}, {Column: "name"}},
	})
	return list, err
}

// seoFor fills in whatever SEO fields the admin left blank.
func (s *productService) seoFor(in *dto.SEOInput, name, description string) model.SEO {
	seo := model.SEO{Keywords: pq.StringArray{}}
	if in != nil {
		seo.Title = strings.TrimSpace(in.Title)
		seo.Description = strings.TrimSpace(in.Description)
		seo.Keywords = pq.StringArray(nonNil(in.Keywords))
	}
	if seo.Title == "" {
		seo.Title = fmt.Sprintf("%s | %s", name, s.brand)
	}
	if seo.Description == "" {
		seo.Description = truncateRunes(description, seoDescriptionLen)
	}
	return seo
}

func (s *productService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, StorefrontCachePrefix); err != nil {
		log.Warn().Err(err).Msg("storefront cache invalidation failed")
	}
}

// setPrices rebuilds the slab list from client input, dropping any ids the
// client sent, and refreshes the denormalised price range.
func setPrices(p *model.Product, in []dto.PriceSlabInput) {
	p.Prices = make([]model.PriceSlab, 0, len(in))
	for _, s := range in {
		p.Prices = append(p.Prices, model.PriceSlab{
			Quantity: s.Quantity.Round(quantityPlaces),
			Unit:     strings.TrimSpace(s.Unit),
			Price:    s.Price.Round(pricePlaces),
		})
	}
	p.MinPrice, p.MaxPrice = pricing.Range(pricingSlabs(p.Prices))
}

// slabProblems checks slabs at the precision they are stored with, so a
// value that rounds to zero is rejected here rather than by the database.
func slabProblems(prices []dto.PriceSlabInput) []string {
	var badPrice, badQty bool
	for _, s := range prices {
		if !s.Price.Round(pricePlaces).GreaterThan(decimal.Zero) {
			badPrice = true
		}
		if !s.Quantity.Round(quantityPlaces).GreaterThan(decimal.Zero) {
			badQty = true
		}
	}
	var out []string
	if badPrice {
		out = append(out, "All price slabs must have a price greater than 0")
	}
	if badQty {
		out = append(out, "All price slabs must have a quantity greater than 0")
	}
	return out
}

// validateUpdate trims the supplied fields and rejects blanking any field
// that is required on create.
func validateUpdate(req *dto.UpdateProductRequest) error {
	var missing []string
	for _, f := range []struct {
		name string
		val  *string
	}{
		{"name", req.Name},
		{"category", req.Category},
		{"description", req.Description},
	} {
		if f.val != nil {
			*f.val = strings.TrimSpace(*f.val)
			if *f.val == "" {
				missing = append(missing, requiredName(f.name))
			}
		}
	}
	if req.Slug != nil {
		*req.Slug = slug.Normalize(*req.Slug)
		if *req.Slug == "" {
			missing = append(missing, "slug")
		}
	}
	if req.PricingType != nil {
		*req.PricingType = strings.ToUpper(strings.TrimSpace(*req.PricingType))
	}
	if req.Prices != nil && len(req.Prices) == 0 {
		missing = append(missing, requiredName("prices"))
	}
	return aggregate(validate.Struct(req), missing, slabProblems(req.Prices)...)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
