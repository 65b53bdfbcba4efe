package repository

import (
	"context"

	"github.com/abdullah9786/nawab-products/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, a *model.Admin) error
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	// First returns the earliest created admin.
	First(ctx context.Context) (*model.Admin, error)
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) AdminRepository { return &adminRepo{db: db} }

func (r *adminRepo) Create(ctx context.Context, a *model.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Where("email = lower(?)", email).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) First(ctx context.Context) (*model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
