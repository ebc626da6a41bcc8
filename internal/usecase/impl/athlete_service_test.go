package impl

import (
	"context"
	"net/http"
	"testing"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAthleteService_CreateAthlete_Success(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	input := &usecase.CreateAthleteInput{
		Name: "Ana Souza",
		CPF:  "12345678901",
	}
	created := &entity.Athlete{
		PKID: 1,
		ID:   uuid.New(),
		Name: input.Name,
		CPF:  input.CPF,
	}

	fixtures.athletes.On("FindByCPF", ctx, input.CPF).
		Return(nil, repository.ErrNotFound)
	fixtures.athletes.On("Create", ctx, mock.MatchedBy(func(e *entity.Athlete) bool {
		return e.Name == input.Name && e.CPF == input.CPF
	})).Return(created, nil)

	athlete, err := service.CreateAthlete(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, created, athlete)
	fixtures.athletes.AssertExpectations(t)
}

func TestAthleteService_CreateAthlete_DuplicateCPF(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	input := &usecase.CreateAthleteInput{
		Name: "Ana Souza",
		CPF:  "12345678901",
	}

	fixtures.athletes.On("FindByCPF", ctx, input.CPF).
		Return(&entity.Athlete{PKID: 7, CPF: input.CPF}, nil)

	athlete, err := service.CreateAthlete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	fixtures.athletes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// A concurrent duplicate that passes the pre-check (cpf still free at read
// time) is caught by the storage unique constraint; the translated error must
// surface through the service as the same AlreadyExists signal.
func TestAthleteService_CreateAthlete_StorageConflictSurfacesAsAlreadyExists(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	input := &usecase.CreateAthleteInput{
		Name: "Ana Souza",
		CPF:  "12345678901",
	}

	fixtures.athletes.On("FindByCPF", ctx, input.CPF).
		Return(nil, repository.ErrNotFound)
	fixtures.athletes.On("Create", ctx, mock.Anything).
		Return(nil, domainerrors.ErrAlreadyExists.WithDetails("athlete violates a uniqueness constraint"))

	athlete, err := service.CreateAthlete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestAthleteService_GetAthlete_Success(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	expected := &entity.Athlete{PKID: 3, Name: "Ana Souza", CPF: "12345678901"}

	fixtures.athletes.On("FindByID", ctx, int64(3)).Return(expected, nil)

	athlete, err := service.GetAthlete(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected, athlete)
}

func TestAthleteService_GetAthlete_NotFound(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()

	fixtures.athletes.On("FindByID", ctx, int64(99)).
		Return(nil, repository.ErrNotFound)

	athlete, err := service.GetAthlete(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAthleteService_GetAthleteByUUID_NotFound(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	id := uuid.New()

	fixtures.athletes.On("FindByUUID", ctx, id).
		Return(nil, repository.ErrNotFound)

	athlete, err := service.GetAthleteByUUID(ctx, id)

	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAthleteService_ListAthletes_Success(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	expected := []*entity.Athlete{
		{PKID: 1, Name: "Ana Souza"},
		{PKID: 2, Name: "Bruno Lima"},
	}

	fixtures.athletes.On("FindAll", ctx, 0, 100).Return(expected, nil)

	athletes, err := service.ListAthletes(ctx, 0, 100)

	require.NoError(t, err)
	assert.Equal(t, expected, athletes)
}

func TestAthleteService_UpdateAthlete_PartialFields(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	name := "Ana Lima"
	weight := 62.5
	input := &usecase.UpdateAthleteInput{Name: &name, Weight: &weight}

	existing := &entity.Athlete{PKID: 3, Name: "Ana Souza", CPF: "12345678901"}
	updated := &entity.Athlete{PKID: 3, Name: name, CPF: "12345678901", Weight: &weight}

	fixtures.athletes.On("FindByID", ctx, int64(3)).Return(existing, nil)
	fixtures.athletes.On("Update", ctx, int64(3), map[string]any{
		"name":   name,
		"weight": weight,
	}).Return(updated, nil)

	athlete, err := service.UpdateAthlete(ctx, 3, input)

	require.NoError(t, err)
	assert.Equal(t, updated, athlete)
	// The CPF was not supplied, so no uniqueness lookup should happen.
	fixtures.athletes.AssertNotCalled(t, "FindByCPF", mock.Anything, mock.Anything)
	fixtures.athletes.AssertExpectations(t)
}

func TestAthleteService_UpdateAthlete_SameCPFNoConflict(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	cpf := "12345678901"
	input := &usecase.UpdateAthleteInput{CPF: &cpf}

	existing := &entity.Athlete{PKID: 3, Name: "Ana Souza", CPF: cpf}
	updated := &entity.Athlete{PKID: 3, Name: "Ana Souza", CPF: cpf}

	fixtures.athletes.On("FindByID", ctx, int64(3)).Return(existing, nil)
	fixtures.athletes.On("Update", ctx, int64(3), map[string]any{"cpf": cpf}).
		Return(updated, nil)

	athlete, err := service.UpdateAthlete(ctx, 3, input)

	require.NoError(t, err)
	assert.Equal(t, updated, athlete)
	// Re-submitting the current CPF is not a conflict and needs no lookup.
	fixtures.athletes.AssertNotCalled(t, "FindByCPF", mock.Anything, mock.Anything)
}

func TestAthleteService_UpdateAthlete_CPFTakenByOther(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	cpf := "98765432100"
	input := &usecase.UpdateAthleteInput{CPF: &cpf}

	existing := &entity.Athlete{PKID: 3, Name: "Ana Souza", CPF: "12345678901"}
	owner := &entity.Athlete{PKID: 8, Name: "Bruno Lima", CPF: cpf}

	fixtures.athletes.On("FindByID", ctx, int64(3)).Return(existing, nil)
	fixtures.athletes.On("FindByCPF", ctx, cpf).Return(owner, nil)

	athlete, err := service.UpdateAthlete(ctx, 3, input)

	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	fixtures.athletes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAthleteService_UpdateAthlete_NotFound(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	name := "Ana Lima"
	input := &usecase.UpdateAthleteInput{Name: &name}

	fixtures.athletes.On("FindByID", ctx, int64(42)).
		Return(nil, repository.ErrNotFound)

	athlete, err := service.UpdateAthlete(ctx, 42, input)

	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAthleteService_DeleteAthlete_Success(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()

	fixtures.athletes.On("Exists", ctx, int64(3)).Return(true, nil)
	fixtures.athletes.On("Delete", ctx, int64(3)).Return(true, nil)

	err := service.DeleteAthlete(ctx, 3)

	require.NoError(t, err)
	fixtures.athletes.AssertExpectations(t)
}

func TestAthleteService_DeleteAthlete_NotFound(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()

	fixtures.athletes.On("Exists", ctx, int64(99)).Return(false, nil)

	err := service.DeleteAthlete(ctx, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fixtures.athletes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAthleteService_ListAthletesByAgeRange_Success(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	age := 20
	expected := []*entity.Athlete{{PKID: 1, Name: "Ana Souza", Age: &age}}

	fixtures.athletes.On("FindByAgeRange", ctx, 18, 25).Return(expected, nil)

	athletes, err := service.ListAthletesByAgeRange(ctx, 18, 25)

	require.NoError(t, err)
	assert.Equal(t, expected, athletes)
}

func TestAthleteService_ListAthletesByTrainingCenter_StorageError(t *testing.T) {
	fixtures := newServiceFixtures()
	service := NewAthleteService(fixtures.txManager, fixtures.logger)

	ctx := context.Background()
	storageErr := errors.New("connection reset")

	fixtures.athletes.On("FindByTrainingCenter", ctx, int64(5)).
		Return(nil, storageErr)

	athletes, err := service.ListAthletesByTrainingCenter(ctx, 5)

	require.Error(t, err)
	assert.Nil(t, athletes)
	assert.ErrorIs(t, err, storageErr)
}
