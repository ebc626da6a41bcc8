// Package usecase defines the application-facing interfaces of the service
// layer together with their input objects. Create inputs carry the required
// fields; update inputs use pointer fields so "not supplied" stays
// distinguishable from "set to the zero value".
package usecase

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAthleteInput carries the validated fields for registering an athlete.
type CreateAthleteInput struct {
	Name             string   `json:"name" validate:"required,max=50"`
	CPF              string   `json:"cpf" validate:"required,len=11"`
	Age              *int     `json:"age" validate:"omitempty,gte=0,lte=130"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height           *float64 `json:"height" validate:"omitempty,gt=0"`
	Sex              *string  `json:"sex" validate:"omitempty,len=1"`
	TrainingCenterID *int64   `json:"training_center_id" validate:"omitempty,gt=0"`
	CategoryID       *int64   `json:"category_id" validate:"omitempty,gt=0"`
}

// UpdateAthleteInput is a partial update: nil fields are left untouched.
type UpdateAthleteInput struct {
	Name             *string  `json:"name" validate:"omitempty,max=50"`
	CPF              *string  `json:"cpf" validate:"omitempty,len=11"`
	Age              *int     `json:"age" validate:"omitempty,gte=0,lte=130"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height           *float64 `json:"height" validate:"omitempty,gt=0"`
	Sex              *string  `json:"sex" validate:"omitempty,len=1"`
	TrainingCenterID *int64   `json:"training_center_id" validate:"omitempty,gt=0"`
	CategoryID       *int64   `json:"category_id" validate:"omitempty,gt=0"`
}

// AthleteUsecase defines the athlete business operations.
type AthleteUsecase interface {
	CreateAthlete(ctx context.Context, input *CreateAthleteInput) (*entity.Athlete, error)
	GetAthlete(ctx context.Context, pkID int64) (*entity.Athlete, error)
	GetAthleteByUUID(ctx context.Context, id uuid.UUID) (*entity.Athlete, error)
	ListAthletes(ctx context.Context, skip, limit int) ([]*entity.Athlete, error)
	UpdateAthlete(ctx context.Context, pkID int64, input *UpdateAthleteInput) (*entity.Athlete, error)
	DeleteAthlete(ctx context.Context, pkID int64) error

	ListAthletesByTrainingCenter(ctx context.Context, trainingCenterID int64) ([]*entity.Athlete, error)
	ListAthletesByCategory(ctx context.Context, categoryID int64) ([]*entity.Athlete, error)
	ListAthletesByAgeRange(ctx context.Context, minAge, maxAge int) ([]*entity.Athlete, error)
}
