package repository

import (
	"context"

	"arena/internal/domain/entity"
)

// CategoryRepository defines the persistence operations for categories.
type CategoryRepository interface {
	CRUD[entity.Category]

	// FindByName retrieves the category owning the given name, the category
	// natural key.
	FindByName(ctx context.Context, name string) (*entity.Category, error)
}
