package repository

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTrainingCenterRepository is a testify mock for
// repository.TrainingCenterRepository.
type MockTrainingCenterRepository struct {
	mock.Mock
}

func (m *MockTrainingCenterRepository) Create(ctx context.Context, e *entity.TrainingCenter) (*entity.TrainingCenter, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) FindByID(ctx context.Context, pkID int64) (*entity.TrainingCenter, error) {
	args := m.Called(ctx, pkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.TrainingCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.TrainingCenter, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) Update(ctx context.Context, pkID int64, fields map[string]any) (*entity.TrainingCenter, error) {
	args := m.Called(ctx, pkID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) Delete(ctx context.Context, pkID int64) (bool, error) {
	args := m.Called(ctx, pkID)

	return args.Bool(0), args.Error(1)
}

func (m *MockTrainingCenterRepository) Exists(ctx context.Context, pkID int64) (bool, error) {
	args := m.Called(ctx, pkID)

	return args.Bool(0), args.Error(1)
}

func (m *MockTrainingCenterRepository) FindByName(ctx context.Context, name string) (*entity.TrainingCenter, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) FindByOwner(ctx context.Context, owner string) ([]*entity.TrainingCenter, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TrainingCenter), args.Error(1)
}
