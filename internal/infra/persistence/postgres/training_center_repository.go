package postgres

import (
	"context"

	"arena/internal/domain/entity"
	"arena/internal/domain/repository"
	"arena/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// trainingCenterRepository implements repository.TrainingCenterRepository.
type trainingCenterRepository struct {
	*crudRepository[entity.TrainingCenter, model.TrainingCenterModel]
}

// NewTrainingCenterRepository is the constructor for trainingCenterRepository.
func NewTrainingCenterRepository(db *gorm.DB) repository.TrainingCenterRepository {
	return &trainingCenterRepository{
		crudRepository: newCRUDRepository(db, "training center", toTrainingCenterEntity, fromTrainingCenterEntity),
	}
}

// FindByName retrieves the training center owning the given name.
func (repo *trainingCenterRepository) FindByName(ctx context.Context, name string) (*entity.TrainingCenter, error) {
	var m model.TrainingCenterModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find training center by name")
	}

	return toTrainingCenterEntity(&m), nil
}

// FindByOwner lists the training centers registered under an owner.
func (repo *trainingCenterRepository) FindByOwner(ctx context.Context, owner string) ([]*entity.TrainingCenter, error) {
	var ms []model.TrainingCenterModel
	err := repo.db.WithContext(ctx).
		Where("owner = ?", owner).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find training centers by owner")
	}

	return repo.toEntities(ms), nil
}

func toTrainingCenterEntity(data *model.TrainingCenterModel) *entity.TrainingCenter {
	if data == nil {
		return nil
	}

	return &entity.TrainingCenter{
		PKID:      data.PKID,
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Owner:     data.Owner,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTrainingCenterEntity(data *entity.TrainingCenter) *model.TrainingCenterModel {
	if data == nil {
		return nil
	}

	return &model.TrainingCenterModel{
		PKID:    data.PKID,
		ID:      data.ID,
		Name:    data.Name,
		Address: data.Address,
		Owner:   data.Owner,
	}
}
