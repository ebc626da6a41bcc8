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

// trainingCenterService implements the TrainingCenterUsecase interface.
type trainingCenterService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewTrainingCenterService is the constructor for trainingCenterService.
func NewTrainingCenterService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.TrainingCenterUsecase {
	return &trainingCenterService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateTrainingCenter registers a training center after checking the name
// is free.
func (srv *trainingCenterService) CreateTrainingCenter(ctx context.Context, input *usecase.CreateTrainingCenterInput) (*entity.TrainingCenter, error) {
	srv.logger.Debug("Creating training center", "name", input.Name)

	var created *entity.TrainingCenter

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		trainingCenterRepo := repos.TrainingCenterRepo()

		existing, err := trainingCenterRepo.FindByName(ctx, input.Name)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return errors.Wrap(err, "failed to check name uniqueness")
		}
		if existing != nil {
			return domainerrors.ErrAlreadyExists.WithDetails(
				fmt.Sprintf("training center with name %q already exists", input.Name))
		}

		created, err = trainingCenterRepo.Create(ctx, &entity.TrainingCenter{
			Name:    input.Name,
			Address: input.Address,
			Owner:   input.Owner,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create training center")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetTrainingCenter retrieves a training center by its sequential id.
func (srv *trainingCenterService) GetTrainingCenter(ctx context.Context, pkID int64) (*entity.TrainingCenter, error) {
	var trainingCenter *entity.TrainingCenter

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.TrainingCenterRepo().FindByID(ctx, pkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("training center with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to find training center")
		}
		trainingCenter = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return trainingCenter, nil
}

// GetTrainingCenterByUUID retrieves a training center by its public identifier.
func (srv *trainingCenterService) GetTrainingCenterByUUID(ctx context.Context, id uuid.UUID) (*entity.TrainingCenter, error) {
	var trainingCenter *entity.TrainingCenter

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.TrainingCenterRepo().FindByUUID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("training center with uuid %s not found", id))
			}

			return errors.Wrap(err, "failed to find training center by uuid")
		}
		trainingCenter = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return trainingCenter, nil
}

// ListTrainingCenters returns a page of training centers.
func (srv *trainingCenterService) ListTrainingCenters(ctx context.Context, skip, limit int) ([]*entity.TrainingCenter, error) {
	var trainingCenters []*entity.TrainingCenter

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.TrainingCenterRepo().FindAll(ctx, skip, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list training centers")
		}
		trainingCenters = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return trainingCenters, nil
}

// UpdateTrainingCenter applies a partial update, re-checking name uniqueness
// when the name changes.
func (srv *trainingCenterService) UpdateTrainingCenter(ctx context.Context, pkID int64, input *usecase.UpdateTrainingCenterInput) (*entity.TrainingCenter, error) {
	srv.logger.Debug("Updating training center", "pkID", pkID)

	var updated *entity.TrainingCenter

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		trainingCenterRepo := repos.TrainingCenterRepo()

		existing, err := trainingCenterRepo.FindByID(ctx, pkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("training center with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to find training center")
		}

		if input.Name != nil && *input.Name != existing.Name {
			owner, err := trainingCenterRepo.FindByName(ctx, *input.Name)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return errors.Wrap(err, "failed to check name uniqueness")
			}
			if owner != nil && owner.PKID != pkID {
				return domainerrors.ErrAlreadyExists.WithDetails(
					fmt.Sprintf("training center with name %q already exists", *input.Name))
			}
		}

		fields := make(map[string]any)
		if input.Name != nil {
			fields["name"] = *input.Name
		}
		if input.Address != nil {
			fields["address"] = *input.Address
		}
		if input.Owner != nil {
			fields["owner"] = *input.Owner
		}

		updated, err = trainingCenterRepo.Update(ctx, pkID, fields)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("training center with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to update training center")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTrainingCenter removes a training center after confirming it exists.
func (srv *trainingCenterService) DeleteTrainingCenter(ctx context.Context, pkID int64) error {
	srv.logger.Debug("Deleting training center", "pkID", pkID)

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		trainingCenterRepo := repos.TrainingCenterRepo()

		exists, err := trainingCenterRepo.Exists(ctx, pkID)
		if err != nil {
			return errors.Wrap(err, "failed to check training center existence")
		}
		if !exists {
			return domainerrors.ErrNotFound.WithDetails(
				fmt.Sprintf("training center with id %d not found", pkID))
		}

		deleted, err := trainingCenterRepo.Delete(ctx, pkID)
		if err != nil {
			return errors.Wrap(err, "failed to delete training center")
		}
		if !deleted {
			return domainerrors.ErrNotFound.WithDetails(
				fmt.Sprintf("training center with id %d not found", pkID))
		}

		return nil
	})
}

// ListTrainingCentersByOwner lists training centers registered under an owner.
func (srv *trainingCenterService) ListTrainingCentersByOwner(ctx context.Context, owner string) ([]*entity.TrainingCenter, error) {
	var trainingCenters []*entity.TrainingCenter

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.TrainingCenterRepo().FindByOwner(ctx, owner)
		if err != nil {
			return errors.Wrap(err, "failed to list training centers by owner")
		}
		trainingCenters = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return trainingCenters, nil
}
