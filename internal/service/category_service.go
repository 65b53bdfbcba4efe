package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abdullah9786/nawab-products/internal/cache"
	"github.com/abdullah9786/nawab-products/internal/dto"
	"github.com/abdullah9786/nawab-products/internal/model"
	"github.com/abdullah9786/nawab-products/internal/repository"
	"github.com/abdullah9786/nawab-products/internal/slug"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CategoryService defines business operations for product categories.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache cache.Cache
}

func NewCategoryService(repo repository.CategoryRepository, c cache.Cache) CategoryService {
	return &categoryService{repo: repo, cache: c}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrCategoryNameBlank
	}
	if err := checkStruct(&req); err != nil {
		return nil, err
	}

	catSlug := slug.Normalize(req.Slug)
	if catSlug == "" {
		catSlug = slug.Generate(req.Name)
	}
	if catSlug == "" {
		return nil, validationError("Category slug could not be derived from the name")
	}

	if err := s.ensureUnique(ctx, req.Name, catSlug, uuid.Nil); err != nil {
		return nil, err
	}

	c := &model.Category{
		Name:        req.Name,
		Slug:        catSlug,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    true,
	}
	if req.DisplayOrder != nil {
		c.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryTaken
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.invalidate(ctx)

	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return mapCategories(list), nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkStruct(&req); err != nil {
		return nil, err
	}
	previousName := c.Name

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrCategoryNameBlank
		}
		c.Name = name
	}
	if req.Slug != nil {
		c.Slug = slug.Normalize(*req.Slug)
		if c.Slug == "" {
			c.Slug = slug.Generate(c.Name)
		}
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Image != nil {
		c.Image = req.Image
	}
	if req.DisplayOrder != nil {
		c.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.ensureUnique(ctx, c.Name, c.Slug, c.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c, previousName); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryTaken
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	s.invalidate(ctx)

	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *categoryService) find(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *categoryService) ensureUnique(ctx context.Context, name, catSlug string, self uuid.UUID) error {
	existing, err := s.repo.FindConflict(ctx, name, catSlug, self)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrCategoryTaken
	}
	return nil
}

func (s *categoryService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, StorefrontCachePrefix); err != nil {
		log.Warn().Err(err).Msg("storefront cache invalidation failed")
	}
}
