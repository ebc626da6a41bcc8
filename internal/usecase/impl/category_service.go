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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateCategory creates a category after checking the name is free.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	srv.logger.Debug("Creating category", "name", input.Name)

	var created *entity.Category

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		categoryRepo := repos.CategoryRepo()

		existing, err := categoryRepo.FindByName(ctx, input.Name)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return errors.Wrap(err, "failed to check name uniqueness")
		}
		if existing != nil {
			return domainerrors.ErrAlreadyExists.WithDetails(
				fmt.Sprintf("category with name %q already exists", input.Name))
		}

		created, err = categoryRepo.Create(ctx, &entity.Category{Name: input.Name})
		if err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetCategory retrieves a category by its sequential id.
func (srv *categoryService) GetCategory(ctx context.Context, pkID int64) (*entity.Category, error) {
	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.CategoryRepo().FindByID(ctx, pkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("category with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to find category")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategoryByUUID retrieves a category by its public identifier.
func (srv *categoryService) GetCategoryByUUID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.CategoryRepo().FindByUUID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("category with uuid %s not found", id))
			}

			return errors.Wrap(err, "failed to find category by uuid")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories returns a page of categories.
func (srv *categoryService) ListCategories(ctx context.Context, skip, limit int) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.CategoryRepo().FindAll(ctx, skip, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// UpdateCategory applies a partial update, re-checking name uniqueness when
// the name changes.
func (srv *categoryService) UpdateCategory(ctx context.Context, pkID int64, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	srv.logger.Debug("Updating category", "pkID", pkID)

	var updated *entity.Category

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		categoryRepo := repos.CategoryRepo()

		existing, err := categoryRepo.FindByID(ctx, pkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("category with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to find category")
		}

		if input.Name != nil && *input.Name != existing.Name {
			owner, err := categoryRepo.FindByName(ctx, *input.Name)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return errors.Wrap(err, "failed to check name uniqueness")
			}
			if owner != nil && owner.PKID != pkID {
				return domainerrors.ErrAlreadyExists.WithDetails(
					fmt.Sprintf("category with name %q already exists", *input.Name))
			}
		}

		fields := make(map[string]any)
		if input.Name != nil {
			fields["name"] = *input.Name
		}

		updated, err = categoryRepo.Update(ctx, pkID, fields)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNotFound.WithDetails(
					fmt.Sprintf("category with id %d not found", pkID))
			}

			return errors.Wrap(err, "failed to update category")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteCategory removes a category after confirming it exists.
func (srv *categoryService) DeleteCategory(ctx context.Context, pkID int64) error {
	srv.logger.Debug("Deleting category", "pkID", pkID)

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		categoryRepo := repos.CategoryRepo()

		exists, err := categoryRepo.Exists(ctx, pkID)
		if err != nil {
			return errors.Wrap(err, "failed to check category existence")
		}
		if !exists {
			return domainerrors.ErrNotFound.WithDetails(
				fmt.Sprintf("category with id %d not found", pkID))
		}

		deleted, err := categoryRepo.Delete(ctx, pkID)
		if err != nil {
			return errors.Wrap(err, "failed to delete category")
		}
		if !deleted {
			return domainerrors.ErrNotFound.WithDetails(
				fmt.Sprintf("category with id %d not found", pkID))
		}

		return nil
	})
}
