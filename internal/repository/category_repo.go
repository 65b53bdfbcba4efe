package repository

import (
	"context"

	"github.com/abdullah9786/nawab-products/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository defines CRUD operations for Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context, includeInactive bool) ([]model.Category, error)
	// ListLatest returns up to limit active categories, display order first
	// and newest first within the same order.
	ListLatest(ctx context.Context, limit int) ([]model.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Category, error)
	// FindConflict returns a category other than excludeID whose name
	// (case-insensitive) or slug matches.
	FindConflict(ctx context.Context, name, slug string, excludeID uuid.UUID) (*model.Category, error)
	// Update saves c. When previousName differs from c.Name, products
	// filed under previousName are moved to the new name in the same
	// transaction.
	Update(ctx context.Context, c *model.Category, previousName string) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepository) List(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	var list []model.Category
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("display_order ASC, name ASC").Find(&list).Error
	return list, err
}

func (r *categoryRepository) ListLatest(ctx context.Context, limit int) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Category, error) {
	var c model.Category
	q := r.db.WithContext(ctx).Where("slug = ?", slug)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) FindConflict(ctx context.Context, name, slug string, excludeID uuid.UUID) (*model.Category, error) {
	var c model.Category
	q := r.db.WithContext(ctx).Where("(lower(name) = lower(?) OR slug = ?)", name, slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *model.Category, previousName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		if previousName == "" || previousName == c.Name {
			return nil
		}
		return tx.Model(&model.Product{}).
			Where("category = ?", previousName).
			Update("category", c.Name).Error
	})
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
