package impl

import (
	"context"
	"io"
	"log/slog"

	"arena/internal/domain/repository"
	mockRepo "arena/internal/mocks/repository"
)

// stubTxManager runs the unit of work directly against a fixed factory and
// propagates the callback's error, mirroring what a committed transaction
// would do.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repos repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

// stubFactory hands out the mock repositories to the unit of work.
type stubFactory struct {
	athletes        *mockRepo.MockAthleteRepository
	categories      *mockRepo.MockCategoryRepository
	trainingCenters *mockRepo.MockTrainingCenterRepository
}

func (s *stubFactory) AthleteRepo() repository.AthleteRepository {
	return s.athletes
}

func (s *stubFactory) CategoryRepo() repository.CategoryRepository {
	return s.categories
}

func (s *stubFactory) TrainingCenterRepo() repository.TrainingCenterRepository {
	return s.trainingCenters
}

// serviceFixtures holds the mocks shared by the service tests.
type serviceFixtures struct {
	athletes        *mockRepo.MockAthleteRepository
	categories      *mockRepo.MockCategoryRepository
	trainingCenters *mockRepo.MockTrainingCenterRepository
	txManager       *stubTxManager
	logger          *slog.Logger
}

func newServiceFixtures() *serviceFixtures {
	athletes := new(mockRepo.MockAthleteRepository)
	categories := new(mockRepo.MockCategoryRepository)
	trainingCenters := new(mockRepo.MockTrainingCenterRepository)

	return &serviceFixtures{
		athletes:        athletes,
		categories:      categories,
		trainingCenters: trainingCenters,
		txManager: &stubTxManager{factory: &stubFactory{
			athletes:        athletes,
			categories:      categories,
			trainingCenters: trainingCenters,
		}},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
