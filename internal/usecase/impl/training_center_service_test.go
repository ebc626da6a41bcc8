package impl

import (
	"context"
	"testing"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrainingCenterService_CreateTrainingCenter_Success(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewTrainingCenterService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	address := "Av. Paulista, 1000"
	owner := "Carla Dias"
	input := &usecase.CreateTrainingCenterInput{
		Name:    "CT Fenix",
		Address: &address,
		Owner:   &owner,
	}
	created := &entity.TrainingCenter{
		PKID:    1,
		ID:      uuid.New(),
		Name:    input.Name,
		Address: &address,
		Owner:   &owner,
	}

	fixtures.trainingCenters.On("FindByName", ctx, "CT Fenix").
		Return(nil, repository.ErrNotFound)
	fixtures.trainingCenters.On("Create", ctx, mock.MatchedBy(func(e *entity.TrainingCenter) bool {
		return e.Name == "CT Fenix" && e.Address == &address && e.Owner == &owner
	})).Return(created, nil)

	trainingCenter, err := service.CreateTrainingCenter(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, created, trainingCenter)
	fixtures.trainingCenters.AssertExpectations(t)
}

func TestTrainingCenterService_CreateTrainingCenter_DuplicateName(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewTrainingCenterService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	input := &usecase.CreateTrainingCenterInput{Name: "CT Fenix"}

	fixtures.trainingCenters.On("FindByName", ctx, "CT Fenix").
		Return(&entity.TrainingCenter{PKID: 4, Name: "CT Fenix"}, nil)

	trainingCenter, err := service.CreateTrainingCenter(ctx, input)

	require.Error(t, err)
	assert.Nil(t, trainingCenter)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	fixtures.trainingCenters.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTrainingCenterService_UpdateTrainingCenter_PartialFields(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewTrainingCenterService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	address := "Rua Nova, 55"
	input := &usecase.UpdateTrainingCenterInput{Address: &address}

	existing := &entity.TrainingCenter{PKID: 4, Name: "CT Fenix"}
	updated := &entity.TrainingCenter{PKID: 4, Name: "CT Fenix", Address: &address}

	fixtures.trainingCenters.On("FindByID", ctx, int64(4)).Return(existing, nil)
	fixtures.trainingCenters.On("Update", ctx, int64(4), map[string]any{
		"address": address,
	}).Return(updated, nil)

	trainingCenter, err := service.UpdateTrainingCenter(ctx, 4, input)

	require.NoError(t, err)
	assert.Equal(t, updated, trainingCenter)
	// The name was not supplied, so no uniqueness lookup should happen.
	fixtures.trainingCenters.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestTrainingCenterService_GetTrainingCenter_NotFound(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewTrainingCenterService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()

	fixtures.trainingCenters.On("FindByID", ctx, int64(77)).
		Return(nil, repository.ErrNotFound)

	trainingCenter, err := service.GetTrainingCenter(ctx, 77)

	require.Error(t, err)
	assert.Nil(t, trainingCenter)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTrainingCenterService_DeleteTrainingCenter_Success(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewTrainingCenterService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()

	fixtures.trainingCenters.On("Exists", ctx, int64(4)).Return(true, nil)
	fixtures.trainingCenters.On("Delete", ctx, int64(4)).Return(true, nil)

	err := service.DeleteTrainingCenter(ctx, 4)

	require.NoError(t, err)
	fixtures.trainingCenters.AssertExpectations(t)
}

func TestTrainingCenterService_ListTrainingCentersByOwner_Success(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewTrainingCenterService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	owner := "Carla Dias"
	expected := []*entity.TrainingCenter{
		{PKID: 1, Name: "CT Fenix", Owner: &owner},
	}

	fixtures.trainingCenters.On("FindByOwner", ctx, owner).Return(expected, nil)

	trainingCenters, err := service.ListTrainingCentersByOwner(ctx, owner)

	require.NoError(t, err)
	assert.Equal(t, expected, trainingCenters)
}
