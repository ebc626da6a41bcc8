package repository

import (
	"context"

	"arena/internal/domain/entity"
)

// TrainingCenterRepository defines the persistence operations for training
// centers.
type TrainingCenterRepository interface {
	CRUD[entity.TrainingCenter]

	// FindByName retrieves the training center owning the given name.
	FindByName(ctx context.Context, name string) (*entity.TrainingCenter, error)

	// FindByOwner lists the training centers registered under an owner.
	FindByOwner(ctx context.Context, owner string) ([]*entity.TrainingCenter, error)
}
