// Package impl contains the application-specific business rules
// implementations. Services enforce the invariants the storage layer cannot
// express as pre-flight checks: natural-key uniqueness before writes and
// existence before mutation.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// athleteService implements the AthleteUsecase interface.
type athleteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAthleteService is the constructor for athleteService.
func NewAthleteService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AthleteUsecase {
	return &athleteService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateAthlete registers a new athlete. The CPF pre-check and the insert
// share one transaction; the unique constraint catches any concurrent
// duplicate that slips between them.
func (srv *athleteService) CreateAthlete(ctx context.Context, input *usecase.CreateAthleteInput) (*entity.Athlete, error) {
	srv.logger.Debug("Creating athlete", "cpf", input.CPF)

	var created *entity.Athlete

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		athleteRepo := repos.AthleteRepo()

		existing, err := athleteRepo.FindByCPF(ctx, input.CPF)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return errors.Wrap(err, "failed to check cpf uniqueness")
		}
		if existing != nil {
			return domainerrors.ErrAlreadyExists.WithDetails(
				fmt.Sprintf("athlete with cpf %q already exists", input.CPF))
		}

		created, err = athleteRepo.Create(ctx, &entity.Athlete{
			Name:             input.Name,
			CPF:              input.CPF,
			Age:              input.Age,
			Weight:           input.Weight,
			Height:           input.Height,
			Sex:              input.Sex,
			TrainingCenterID: input.TrainingCenterID,
			CategoryID:       input.CategoryID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create athlete")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetAthlete retrieves an athlete by its sequential id.
func (srv *athleteService) GetAthlete(ctx context.Context, pkID int64) (*entity.Athlete, error) {
	var athlete *entity.Athlete

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.AthleteRepo().FindByID(ctx, pkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("athlete with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to find athlete")
		}
		athlete = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return athlete, nil
}

// GetAthleteByUUID retrieves an athlete by its public identifier.
func (srv *athleteService) GetAthleteByUUID(ctx context.Context, id uuid.UUID) (*entity.Athlete, error) {
	var athlete *entity.Athlete

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.AthleteRepo().FindByUUID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("athlete with uuid %s not found", id))
			}

			return errors.Wrap(err, "failed to find athlete by uuid")
		}
		athlete = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return athlete, nil
}

// ListAthletes returns a page of athletes; plain pass-through.
func (srv *athleteService) ListAthletes(ctx context.Context, skip, limit int) ([]*entity.Athlete, error) {
	var athletes []*entity.Athlete

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.AthleteRepo().FindAll(ctx, skip, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list athletes")
		}
		athletes = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return athletes, nil
}

// UpdateAthlete applies a partial update. Only fields present in the input
// are written; when the CPF changes, the new value must not belong to a
// different athlete.
func (srv *athleteService) UpdateAthlete(ctx context.Context, pkID int64, input *usecase.UpdateAthleteInput) (*entity.Athlete, error) {
	srv.logger.Debug("Updating athlete", "pkID", pkID)

	var updated *entity.Athlete

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		athleteRepo := repos.AthleteRepo()

		existing, err := athleteRepo.FindByID(ctx, pkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("athlete with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to find athlete")
		}

		if input.CPF != nil && *input.CPF != existing.CPF {
			owner, err := athleteRepo.FindByCPF(ctx, *input.CPF)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return errors.Wrap(err, "failed to check cpf uniqueness")
			}
			if owner != nil && owner.PKID != pkID {
				return domainerrors.ErrAlreadyExists.WithDetails(
					fmt.Sprintf("athlete with cpf %q already exists", *input.CPF))
			}
		}

		updated, err = athleteRepo.Update(ctx, pkID, athleteUpdateFields(input))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("athlete with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to update athlete")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAthlete removes an athlete after confirming it exists.
func (srv *athleteService) DeleteAthlete(ctx context.Context, pkID int64) error {
	srv.logger.Debug("Deleting athlete", "pkID", pkID)

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		athleteRepo := repos.AthleteRepo()

		exists, err := athleteRepo.Exists(ctx, pkID)
		if err != nil {
			return errors.Wrap(err, "failed to check athlete existence")
		}
		if !exists {
			return domainerrors.ErrNotFound.WithDetails(
				fmt.Sprintf("athlete with id %d not found", pkID))
		}

		deleted, err := athleteRepo.Delete(ctx, pkID)
		if err != nil {
			return errors.Wrap(err, "failed to delete athlete")
		}
		if !deleted {
			return domainerrors.ErrNotFound.WithDetails(
				fmt.Sprintf("athlete with id %d not found", pkID))
		}

		return nil
	})
}

// ListAthletesByTrainingCenter lists athletes assigned to a training center.
func (srv *athleteService) ListAthletesByTrainingCenter(ctx context.Context, trainingCenterID int64) ([]*entity.Athlete, error) {
	var athletes []*entity.Athlete

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.AthleteRepo().FindByTrainingCenter(ctx, trainingCenterID)
		if err != nil {
			return errors.Wrap(err, "failed to list athletes by training center")
		}
		athletes = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return athletes, nil
}

// ListAthletesByCategory lists athletes competing in a category.
func (srv *athleteService) ListAthletesByCategory(ctx context.Context, categoryID int64) ([]*entity.Athlete, error) {
	var athletes []*entity.Athlete

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.AthleteRepo().FindByCategory(ctx, categoryID)
		if err != nil {
			return errors.Wrap(err, "failed to list athletes by category")
		}
		athletes = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return athletes, nil
}

// ListAthletesByAgeRange lists athletes with age in [minAge, maxAge]
// inclusive. The min<=max constraint is enforced at the transport layer.
func (srv *athleteService) ListAthletesByAgeRange(ctx context.Context, minAge, maxAge int) ([]*entity.Athlete, error) {
	var athletes []*entity.Athlete

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.AthleteRepo().FindByAgeRange(ctx, minAge, maxAge)
		if err != nil {
			return errors.Wrap(err, "failed to list athletes by age range")
		}
		athletes = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return athletes, nil
}

// athleteUpdateFields converts the partial input into a sparse column map.
// Absent (nil) fields never make it into the map, so they are never written.
func athleteUpdateFields(input *usecase.UpdateAthleteInput) map[string]any {
	fields := make(map[string]any)

	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.CPF != nil {
		fields["cpf"] = *input.CPF
	}
	if input.Age != nil {
		fields["age"] = *input.Age
	}
	if input.Weight != nil {
		fields["weight"] = *input.Weight
	}
	if input.Height != nil {
		fields["height"] = *input.Height
	}
	if input.Sex != nil {
		fields["sex"] = *input.Sex
	}
	if input.TrainingCenterID != nil {
		fields["training_center_id"] = *input.TrainingCenterID
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}

	return fields
}
