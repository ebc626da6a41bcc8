package usecase

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput carries the validated fields for creating a category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,max=20"`
}

// UpdateCategoryInput is a partial update: nil fields are left untouched.
type UpdateCategoryInput struct {
	Name *string `json:"name" validate:"omitempty,max=20"`
}

// CategoryUsecase defines the category business operations.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, pkID int64) (*entity.Category, error)
	GetCategoryByUUID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context, skip, limit int) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, pkID int64, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, pkID int64) error
}
