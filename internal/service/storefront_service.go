package service

import (
	"context"
	"errors"
	"time"

	"github.com/abdullah9786/nawab-products/internal/cache"
	"github.com/abdullah9786/nawab-products/internal/catalog"
	"github.com/abdullah9786/nawab-products/internal/config"
	"github.com/abdullah9786/nawab-products/internal/dto"
	"github.com/abdullah9786/nawab-products/internal/repository"
	"github.com/abdullah9786/nawab-products/internal/slug"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StorefrontCachePrefix namespaces every cached storefront read model.
const StorefrontCachePrefix = "storefront:"

const (
	homeFeaturedLimit   = 6
	homeCategoriesLimit = 4
	relatedLimit        = 4
	offerCurrency       = "INR"
)

// staticPages are the sitemap entries that do not come from the database.
var staticPages = []dto.SitemapEntry{
	{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
	{Path: "/products", ChangeFreq: "daily", Priority: 0.9},
	{Path: "/about", ChangeFreq: "monthly", Priority: 0.7},
	{Path: "/contact", ChangeFreq: "monthly", Priority: 0.7},
}

// StorefrontService serves the read models behind the public pages.
type StorefrontService interface {
	Home(ctx context.Context) (*dto.HomeResponse, error)
	Listing(ctx context.Context, categorySlug, sort string) (*dto.ListingResponse, error)
	Detail(ctx context.Context, slug string) (*dto.ProductDetailResponse, error)
	Sitemap(ctx context.Context) ([]dto.SitemapEntry, error)
}

type storefrontService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      cache.Cache
	present    *Presenter
	ttl        time.Duration
	brand      string
}

func NewStorefrontService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	c cache.Cache,
	present *Presenter,
	cfg *config.Config,
) StorefrontService {
	return &storefrontService{
		products:   products,
		categories: categories,
		cache:      c,
		present:    present,
		ttl:        cfg.CacheTTL,
		brand:      cfg.BrandName,
	}
}

func (s *storefrontService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	resp := &dto.HomeResponse{}
	err := s.cached(ctx, StorefrontCachePrefix+"home", resp, func() error {
		featured, _, err := s.products.List(ctx, catalog.Spec{
			ActiveOnly: true,
			Order:      catalog.OrderFor(catalog.SortFeatured),
			Page:       1,
			Limit:      homeFeaturedLimit,
		})
		if err != nil {
			return err
		}
		cats, err := s.categories.ListLatest(ctx, homeCategoriesLimit)
		if err != nil {
			return err
		}
		resp.Featured = s.present.Products(featured)
		resp.Categories = mapCategories(cats)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *storefrontService) Listing(ctx context.Context, categorySlug, sort string) (*dto.ListingResponse, error) {
	sort = catalog.ParseSort(sort)
	spec, err := catalog.Build(ctx, s.categories, catalog.Params{CategorySlug: categorySlug, Sort: sort})
	if err != nil {
		return nil, err
	}
	// Slugs that do not resolve share the unfiltered entry.
	category := catalog.AllCategories
	if spec.Category != "" {
		category = slug.Normalize(categorySlug)
	}

	resp := &dto.ListingResponse{}
	key := StorefrontCachePrefix + "products:" + category + ":" + sort
	err = s.cached(ctx, key, resp, func() error {
		cats, err := s.categories.List(ctx, false)
		if err != nil {
			return err
		}
		list, _, err := s.products.List(ctx, spec.Unbounded())
		if err != nil {
			return err
		}
		resp.Categories = mapCategories(cats)
		resp.Products = s.present.Products(list)
		resp.Category = category
		resp.Sort = sort
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *storefrontService) Detail(ctx context.Context, slugParam string) (*dto.ProductDetailResponse, error) {
	productSlug := slug.Normalize(slugParam)
	resp := &dto.ProductDetailResponse{}
	err := s.cached(ctx, StorefrontCachePrefix+"product:"+productSlug, resp, func() error {
		p, err := s.products.FindBySlug(ctx, productSlug, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		related, err := s.products.ListRelated(ctx, p.Category, p.Slug, relatedLimit)
		if err != nil {
			return err
		}
		resp.Product = s.present.Product(*p)
		resp.Related = s.present.Products(related)
		resp.JSONLD = dto.ProductJSONLD{
			Context:     "https://schema.org",
			Type:        "Product",
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Brand:       dto.JSONLDBrand{Type: "Brand", Name: s.brand},
			Offers: dto.AggregateOffer{
				Type:          "AggregateOffer",
				PriceCurrency: offerCurrency,
				LowPrice:      p.MinPrice,
				HighPrice:     p.MaxPrice,
				OfferCount:    len(p.Prices),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *storefrontService) Sitemap(ctx context.Context) ([]dto.SitemapEntry, error) {
	rows, err := s.products.ListSitemap(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	entries := make([]dto.SitemapEntry, 0, len(staticPages)+len(rows))
	for _, page := range staticPages {
		page.LastMod = now
		entries = append(entries, page)
	}
	for _, r := range rows {
		entries = append(entries, dto.SitemapEntry{
			Path:       "/products/" + r.Slug,
			LastMod:    r.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}
	return entries, nil
}

// cached fills dst from the cache, or runs load and stores dst on success.
// Cache errors are logged and otherwise ignored.
func (s *storefrontService) cached(ctx context.Context, key string, dst interface{}, load func() error) error {
	hit, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storefront cache read failed")
	}
	if hit {
		return nil
	}
	if err := load(); err != nil {
		return err
	}
	if err := s.cache.Set(ctx, key, dst, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storefront cache write failed")
	}
	return nil
}
