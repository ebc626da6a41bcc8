package postgres

import (
	"context"
	"fmt"

	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// crudRepository is the single generic implementation of the
// repository.CRUD contract. It is parameterized by the domain entity E and
// its persistence model M, plus a mapper pair converting between the two.
// Per-entity repositories embed it and add their natural-key and
// relationship queries.
type crudRepository[E any, M any] struct {
	db         *gorm.DB
	entityName string
	toEntity   func(*M) *E
	toModel    func(*E) *M
}

func newCRUDRepository[E any, M any](
	db *gorm.DB,
	entityName string,
	toEntity func(*M) *E,
	toModel func(*E) *M,
) *crudRepository[E, M] {
	return &crudRepository[E, M]{
		db:         db,
		entityName: entityName,
		toEntity:   toEntity,
		toModel:    toModel,
	}
}

// Create inserts the entity and returns it with the store-generated pk_id,
// public id and timestamps populated. The storage backend is the final
// authority on uniqueness: a constraint violation that slipped past the
// service pre-check still surfaces as AlreadyExists.
func (repo *crudRepository[E, M]) Create(ctx context.Context, e *E) (*E, error) {
	m := repo.toModel(e)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, repo.translateWriteError(err, "create")
	}

	return repo.toEntity(m), nil
}

// FindByID retrieves a single row by its sequential primary identity.
func (repo *crudRepository[E, M]) FindByID(ctx context.Context, pkID int64) (*E, error) {
	var m M
	if err := repo.db.WithContext(ctx).Where("pk_id = ?", pkID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by id", repo.entityName)
	}

	return repo.toEntity(&m), nil
}

// FindByUUID retrieves a single row by its opaque public identifier.
func (repo *crudRepository[E, M]) FindByUUID(ctx context.Context, id uuid.UUID) (*E, error) {
	var m M
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by uuid", repo.entityName)
	}

	return repo.toEntity(&m), nil
}

// FindAll lists rows ordered by pk_id ascending so offset/limit pagination
// stays deterministic.
func (repo *crudRepository[E, M]) FindAll(ctx context.Context, offset, limit int) ([]*E, error) {
	var ms []M
	err := repo.db.WithContext(ctx).
		Order("pk_id").
		Offset(offset).
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", repo.entityName)
	}

	return repo.toEntities(ms), nil
}

// Update applies only the supplied columns to the matching row. GORM
// refreshes updated_at alongside the sparse column map; pk_id, the public id
// and created_at are never part of the map.
func (repo *crudRepository[E, M]) Update(ctx context.Context, pkID int64, fields map[string]any) (*E, error) {
	if len(fields) == 0 {
		return repo.FindByID(ctx, pkID)
	}

	var m M
	result := repo.db.WithContext(ctx).
		Model(&m).
		Where("pk_id = ?", pkID).
		Updates(fields)
	if result.Error != nil {
		return nil, repo.translateWriteError(result.Error, "update")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return repo.FindByID(ctx, pkID)
}

// Delete removes the row and reports whether one existed.
func (repo *crudRepository[E, M]) Delete(ctx context.Context, pkID int64) (bool, error) {
	var m M
	result := repo.db.WithContext(ctx).Where("pk_id = ?", pkID).Delete(&m)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "failed to delete %s", repo.entityName)
	}

	return result.RowsAffected > 0, nil
}

// Exists checks for the row with a count query, without materializing it.
func (repo *crudRepository[E, M]) Exists(ctx context.Context, pkID int64) (bool, error) {
	var m M
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&m).
		Where("pk_id = ?", pkID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "failed to check %s existence", repo.entityName)
	}

	return count > 0, nil
}

func (repo *crudRepository[E, M]) toEntities(ms []M) []*E {
	out := make([]*E, 0, len(ms))
	for i := range ms {
		out = append(out, repo.toEntity(&ms[i]))
	}

	return out
}

// translateWriteError converts PostgreSQL constraint violations to domain
// errors; anything unclassified becomes a generic database error.
func (repo *crudRepository[E, M]) translateWriteError(err error, op string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrAlreadyExists.WithDetails(
			fmt.Sprintf("%s violates a uniqueness constraint", repo.entityName))
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s references a nonexistent row", repo.entityName))
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s is missing required fields", repo.entityName))
	default:
		return domainerrors.NewDatabaseExecuteError(err,
			fmt.Sprintf("failed to %s %s", op, repo.entityName))
	}
}
