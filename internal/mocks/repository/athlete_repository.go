// Package repository provides hand-rolled testify mocks for the persistence
// interfaces, used by the service layer tests.
package repository

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAthleteRepository is a testify mock for repository.AthleteRepository.
type MockAthleteRepository struct {
	mock.Mock
}

func (m *MockAthleteRepository) Create(ctx context.Context, e *entity.Athlete) (*entity.Athlete, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByID(ctx context.Context, pkID int64) (*entity.Athlete, error) {
	args := m.Called(ctx, pkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Athlete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Athlete, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) Update(ctx context.Context, pkID int64, fields map[string]any) (*entity.Athlete, error) {
	args := m.Called(ctx, pkID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) Delete(ctx context.Context, pkID int64) (bool, error) {
	args := m.Called(ctx, pkID)

	return args.Bool(0), args.Error(1)
}

func (m *MockAthleteRepository) Exists(ctx context.Context, pkID int64) (bool, error) {
	args := m.Called(ctx, pkID)

	return args.Bool(0), args.Error(1)
}

func (m *MockAthleteRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Athlete, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByTrainingCenter(ctx context.Context, trainingCenterID int64) ([]*entity.Athlete, error) {
	args := m.Called(ctx, trainingCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*entity.Athlete, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByAgeRange(ctx context.Context, minAge, maxAge int) ([]*entity.Athlete, error) {
	args := m.Called(ctx, minAge, maxAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Athlete), args.Error(1)
}
