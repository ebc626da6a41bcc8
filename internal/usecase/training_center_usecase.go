package usecase

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTrainingCenterInput carries the validated fields for registering a
// training center.
type CreateTrainingCenterInput struct {
	Name    string  `json:"name" validate:"required,max=20"`
	Address *string `json:"address" validate:"omitempty,max=60"`
	Owner   *string `json:"owner" validate:"omitempty,max=30"`
}

// UpdateTrainingCenterInput is a partial update: nil fields are left untouched.
type UpdateTrainingCenterInput struct {
	Name    *string `json:"name" validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=60"`
	Owner   *string `json:"owner" validate:"omitempty,max=30"`
}

// TrainingCenterUsecase defines the training center business operations.
type TrainingCenterUsecase interface {
	CreateTrainingCenter(ctx context.Context, input *CreateTrainingCenterInput) (*entity.TrainingCenter, error)
	GetTrainingCenter(ctx context.Context, pkID int64) (*entity.TrainingCenter, error)
	GetTrainingCenterByUUID(ctx context.Context, id uuid.UUID) (*entity.TrainingCenter, error)
	ListTrainingCenters(ctx context.Context, skip, limit int) ([]*entity.TrainingCenter, error)
	UpdateTrainingCenter(ctx context.Context, pkID int64, input *UpdateTrainingCenterInput) (*entity.TrainingCenter, error)
	DeleteTrainingCenter(ctx context.Context, pkID int64) error

	ListTrainingCentersByOwner(ctx context.Context, owner string) ([]*entity.TrainingCenter, error)
}
