package repository

import (
	"context"

	"arena/internal/domain/entity"
)

// AthleteRepository defines the persistence operations for athletes.
type AthleteRepository interface {
	CRUD[entity.Athlete]

	// FindByCPF retrieves the athlete owning the given CPF, the athlete
	// natural key.
	FindByCPF(ctx context.Context, cpf string) (*entity.Athlete, error)

	// FindByTrainingCenter lists the athletes assigned to a training center.
	FindByTrainingCenter(ctx context.Context, trainingCenterID int64) ([]*entity.Athlete, error)

	// FindByCategory lists the athletes competing in a category.
	FindByCategory(ctx context.Context, categoryID int64) ([]*entity.Athlete, error)

	// FindByAgeRange lists athletes whose age falls within [minAge, maxAge]
	// inclusive. Athletes without a recorded age are excluded.
	FindByAgeRange(ctx context.Context, minAge, maxAge int) ([]*entity.Athlete, error)
}
