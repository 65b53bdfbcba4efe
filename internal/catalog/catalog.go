// Package catalog turns storefront query parameters into a product query
// specification the repository layer can execute.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/abdullah9786/nawab-products/internal/model"

	"gorm.io/gorm"
)

// Sort keys accepted in the ?sort= query parameter.
const (
	SortFeatured  = "featured"
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// AllCategories is the sentinel category value meaning "no category filter".
const AllCategories = "all"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// CategoryResolver looks up a category by slug. Implementations return
// gorm.ErrRecordNotFound when no row matches.
type CategoryResolver interface {
	FindBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Category, error)
}

// Params is the raw, user-supplied listing request.
type Params struct {
	CategorySlug    string
	Sort            string
	Featured        bool
	IncludeInactive bool
	Page            int
	Limit           int
}

// Order is one ORDER BY term.
type Order struct {
	Column string
	Desc   bool
}

// Spec is a resolved product query.
type Spec struct {
	ActiveOnly   bool
	Category     string // category name; empty means no filter
	FeaturedOnly bool
	Order        []Order
	Page         int
	Offset       int
	Limit        int // 0 means unbounded
}

// Build resolves p into a Spec. An unknown or inactive category slug drops
// the category filter rather than failing; lookup errors other than
// not-found are returned.
func Build(ctx context.Context, resolver CategoryResolver, p Params) (Spec, error) {
	page, limit := normalizePage(p.Page, p.Limit)
	spec := Spec{
		ActiveOnly:   !p.IncludeInactive,
		FeaturedOnly: p.Featured,
		Order:        OrderFor(ParseSort(p.Sort)),
		Page:         page,
		Offset:       (page - 1) * limit,
		Limit:        limit,
	}

	slug := strings.TrimSpace(p.CategorySlug)
	if slug == "" || strings.EqualFold(slug, AllCategories) {
		return spec, nil
	}
	cat, err := resolver.FindBySlug(ctx, strings.ToLower(slug), true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return spec, nil
		}
		return Spec{}, err
	}
	spec.Category = cat.Name
	return spec, nil
}

// Unbounded returns a copy of s without pagination.
func (s Spec) Unbounded() Spec {
	s.Page, s.Offset, s.Limit = 1, 0, 0
	return s
}

// OrderClause renders the ORDER BY expression. Columns come from OrderFor
// only, never from user input.
func (s Spec) OrderClause() string {
	parts := make([]string, 0, len(s.Order))
	for _, o := range s.Order {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, o.Column+" "+dir)
	}
	return strings.Join(parts, ", ")
}

// ParseSort maps a raw sort value to a known key, defaulting to SortFeatured.
func ParseSort(raw string) string {
	switch k := strings.ToLower(strings.TrimSpace(raw)); k {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return k
	default:
		return SortFeatured
	}
}

// OrderFor returns the ORDER BY terms for a sort key. Price sorts use the
// lowest slab price of each product.
func OrderFor(sort string) []Order {
	switch sort {
	case SortNewest:
		return []Order{{Column: "created_at", Desc: true}}
	case SortPriceAsc:
		return []Order{{Column: "min_price"}, {Column: "created_at", Desc: true}}
	case SortPriceDesc:
		return []Order{{Column: "min_price", Desc: true}, {Column: "created_at", Desc: true}}
	default:
		return []Order{{Column: "featured", Desc: true}, {Column: "created_at", Desc: true}}
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
