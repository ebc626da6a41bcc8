package postgres

import (
	"context"

	"arena/internal/domain/entity"
	"arena/internal/domain/repository"
	"arena/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements repository.CategoryRepository.
type categoryRepository struct {
	*crudRepository[entity.Category, model.CategoryModel]
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		crudRepository: newCRUDRepository(db, "category", toCategoryEntity, fromCategoryEntity),
	}
}

// FindByName retrieves the category owning the given name.
func (repo *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var m model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by name")
	}

	return toCategoryEntity(&m), nil
}

func toCategoryEntity(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		PKID:      data.PKID,
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCategoryEntity(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		PKID: data.PKID,
		ID:   data.ID,
		Name: data.Name,
	}
}
