package repository

import (
	"context"
	"time"

	"github.com/abdullah9786/nawab-products/internal/catalog"
	"github.com/abdullah9786/nawab-products/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for products and their
// price slabs. Services depend on this interface, not on the GORM
// implementation, so they can be unit tested with in-memory stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, spec catalog.Spec) ([]model.Product, int64, error)
	ListRelated(ctx context.Context, category, excludeSlug string, limit int) ([]model.Product, error)
	// Update saves p. When replacePrices is true the stored slabs are
	// deleted and p.Prices inserted in the same transaction.
	Update(ctx context.Context, p *model.Product, replacePrices bool) error
	DeleteBySlug(ctx context.Context, slug string) (int64, error)
	ListSitemap(ctx context.Context) ([]SitemapRow, error)
}

// SitemapRow is the slice of a product needed for /sitemap.xml.
type SitemapRow struct {
	Slug      string
	UpdatedAt time.Time
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

// orderedPrices preloads slabs in the order the admin entered them.
func orderedPrices(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	numberSlabs(p)
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Product, error) {
	var p model.Product
	q := r.db.WithContext(ctx).Preload("Prices", orderedPrices).Where("slug = ?", slug)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

func (r *productRepo) List(ctx context.Context, spec catalog.Spec) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})
	if spec.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if spec.Category != "" {
		q = q.Where("category = ?", spec.Category)
	}
	if spec.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}
	q = q.Session(&gorm.Session{})

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	find := q.Preload("Prices", orderedPrices).Order(spec.OrderClause())
	if spec.Limit > 0 {
		find = find.Limit(spec.Limit).Offset(spec.Offset)
	}
	err := find.Find(&products).Error
	return products, total, err
}

func (r *productRepo) ListRelated(ctx context.Context, category, excludeSlug string, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Prices", orderedPrices).
		Where("category = ? AND slug <> ? AND is_active = ?", category, excludeSlug, true).
		Order("featured DESC, created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product, replacePrices bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		if !replacePrices {
			return nil
		}
		if err := tx.Where("product_id = ?", p.ID).Delete(&model.PriceSlab{}).Error; err != nil {
			return err
		}
		if len(p.Prices) == 0 {
			return nil
		}
		numberSlabs(p)
		for i := range p.Prices {
			p.Prices[i].ID = uuid.Nil
		}
		return tx.Create(&p.Prices).Error
	})
}

func (r *productRepo) DeleteBySlug(ctx context.Context, slug string) (int64, error) {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

func (r *productRepo) ListSitemap(ctx context.Context) ([]SitemapRow, error) {
	var rows []SitemapRow
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("slug, updated_at").
		Where("is_active = ?", true).
		Order("updated_at DESC").
		Scan(&rows).Error
	return rows, err
}

// numberSlabs stamps the owning product and list position on every slab.
func numberSlabs(p *model.Product) {
	for i := range p.Prices {
		p.Prices[i].ProductID = p.ID
		p.Prices[i].Position = i
	}
}
