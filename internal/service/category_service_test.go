package service

import (
	"context"
	"testing"

	"github.com/abdullah9786/nawab-products/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateCategory_DerivesSlugFromName(t *testing.T) {
	repo := newStubCategoryRepo()
	c := &stubCache{}
	svc := NewCategoryService(repo, c)

	resp, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "  Dry Fruits & Nuts "})
	require.NoError(t, err)
	assert.Equal(t, "Dry Fruits & Nuts", resp.Name)
	assert.Equal(t, "dry-fruits-nuts", resp.Slug)
	assert.True(t, resp.IsActive)
	assert.Equal(t, []string{StorefrontCachePrefix}, c.invalidated)
}

func TestCreateCategory_KeepsExplicitSlug(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), &stubCache{})

	order := 3
	resp, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:         "Spices",
		Slug:         " Whole-Spices ",
		DisplayOrder: &order,
	})
	require.NoError(t, err)
	assert.Equal(t, "whole-spices", resp.Slug)
	assert.Equal(t, 3, resp.DisplayOrder)
}

func TestCreateCategory_BlankName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), &stubCache{})

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrCategoryNameBlank)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestCreateCategory_DuplicateNameOrSlug(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.add("Spices", "spices", true)
	svc := NewCategoryService(repo, &stubCache{})

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "SPICES", Slug: "other"})
	assert.ErrorIs(t, err, ErrCategoryTaken)

	_, err = svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Masalas", Slug: "spices"})
	assert.ErrorIs(t, err, ErrCategoryTaken)
	assert.Len(t, repo.byID, 1)
}

func TestUpdateCategory_RenameCascades(t *testing.T) {
	repo := newStubCategoryRepo()
	cat := repo.add("Spices", "spices", true)
	svc := NewCategoryService(repo, &stubCache{})

	resp, err := svc.Update(context.Background(), cat.ID, dto.UpdateCategoryRequest{Name: strPtr("Whole Spices")})
	require.NoError(t, err)
	assert.Equal(t, "Whole Spices", resp.Name)
	assert.Equal(t, "spices", resp.Slug)
	assert.Equal(t, "Whole Spices", repo.renamedTo["Spices"])
}

func TestUpdateCategory_ConflictWithAnother(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.add("Spices", "spices", true)
	honey := repo.add("Honey", "honey", true)
	svc := NewCategoryService(repo, &stubCache{})

	_, err := svc.Update(context.Background(), honey.ID, dto.UpdateCategoryRequest{Slug: strPtr("spices")})
	assert.ErrorIs(t, err, ErrCategoryTaken)

	// renaming to its own name is not a conflict
	_, err = svc.Update(context.Background(), honey.ID, dto.UpdateCategoryRequest{Name: strPtr("Honey")})
	assert.NoError(t, err)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), &stubCache{})

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateCategoryRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	repo := newStubCategoryRepo()
	cat := repo.add("Spices", "spices", true)
	svc := NewCategoryService(repo, &stubCache{})

	require.NoError(t, svc.Delete(context.Background(), cat.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), cat.ID), ErrCategoryNotFound)
}

func TestListCategories_IncludeInactive(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.add("Spices", "spices", true)
	repo.add("Seasonal", "seasonal", false)
	svc := NewCategoryService(repo, &stubCache{})

	active, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
