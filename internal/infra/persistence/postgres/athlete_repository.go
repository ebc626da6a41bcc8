package postgres

import (
	"context"

	"arena/internal/domain/entity"
	"arena/internal/domain/repository"
	"arena/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// athleteRepository implements repository.AthleteRepository: the generic
// CRUD contract plus the athlete-specific lookups.
type athleteRepository struct {
	*crudRepository[entity.Athlete, model.AthleteModel]
}

// NewAthleteRepository is the constructor for athleteRepository.
func NewAthleteRepository(db *gorm.DB) repository.AthleteRepository {
	return &athleteRepository{
		crudRepository: newCRUDRepository(db, "athlete", toAthleteEntity, fromAthleteEntity),
	}
}

// FindByCPF retrieves the athlete owning the given CPF.
func (repo *athleteRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Athlete, error) {
	var m model.AthleteModel
	if err := repo.db.WithContext(ctx).Where("cpf = ?", cpf).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find athlete by cpf")
	}

	return toAthleteEntity(&m), nil
}

// FindByTrainingCenter lists the athletes assigned to a training center.
func (repo *athleteRepository) FindByTrainingCenter(ctx context.Context, trainingCenterID int64) ([]*entity.Athlete, error) {
	var ms []model.AthleteModel
	err := repo.db.WithContext(ctx).
		Where("training_center_id = ?", trainingCenterID).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find athletes by training center")
	}

	return repo.toEntities(ms), nil
}

// FindByCategory lists the athletes competing in a category.
func (repo *athleteRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*entity.Athlete, error) {
	var ms []model.AthleteModel
	err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find athletes by category")
	}

	return repo.toEntities(ms), nil
}

// FindByAgeRange lists athletes with age in [minAge, maxAge]. Rows with a
// NULL age never satisfy the comparison, so they are excluded by the query
// itself.
func (repo *athleteRepository) FindByAgeRange(ctx context.Context, minAge, maxAge int) ([]*entity.Athlete, error) {
	var ms []model.AthleteModel
	err := repo.db.WithContext(ctx).
		Where("age >= ? AND age <= ?", minAge, maxAge).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find athletes by age range")
	}

	return repo.toEntities(ms), nil
}

// --- Mapper Functions ---

// toAthleteEntity converts a GORM AthleteModel to a domain Athlete entity.
func toAthleteEntity(data *model.AthleteModel) *entity.Athlete {
	if data == nil {
		return nil
	}

	return &entity.Athlete{
		PKID:             data.PKID,
		ID:               data.ID,
		Name:             data.Name,
		CPF:              data.CPF,
		Age:              data.Age,
		Weight:           data.Weight,
		Height:           data.Height,
		Sex:              data.Sex,
		TrainingCenterID: data.TrainingCenterID,
		CategoryID:       data.CategoryID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromAthleteEntity converts a domain Athlete entity to a GORM AthleteModel.
func fromAthleteEntity(data *entity.Athlete) *model.AthleteModel {
	if data == nil {
		return nil
	}

	return &model.AthleteModel{
		PKID:             data.PKID,
		ID:               data.ID,
		Name:             data.Name,
		CPF:              data.CPF,
		Age:              data.Age,
		Weight:           data.Weight,
		Height:           data.Height,
		Sex:              data.Sex,
		TrainingCenterID: data.TrainingCenterID,
		CategoryID:       data.CategoryID,
	}
}
