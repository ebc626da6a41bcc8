package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions. It lets the use case layer run check-then-write sequences
// atomically without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations obtained from the factory use the
	// same transaction.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction.
type RepositoryFactory interface {
	// AthleteRepo returns an AthleteRepository bound to the current transaction.
	AthleteRepo() AthleteRepository

	// CategoryRepo returns a CategoryRepository bound to the current transaction.
	CategoryRepo() CategoryRepository

	// TrainingCenterRepo returns a TrainingCenterRepository bound to the current transaction.
	TrainingCenterRepo() TrainingCenterRepository
}
