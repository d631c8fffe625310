package postgres

import (
	"context"
	"fmt"

	"talenttrack/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create repository
// instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewUserRepository creates a user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewTalentRepository creates a talent repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTalentRepository() repository.TalentRepository {
	return NewTalentRepository(f.tx)
}

// NewTaskRepository creates a task repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTaskRepository() repository.TaskRepository {
	return NewTaskRepository(f.tx)
}

// NewAchievementRepository creates an achievement repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAchievementRepository() repository.AchievementRepository {
	return NewAchievementRepository(f.tx)
}

// NewCoachRepository creates a coach repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewCoachRepository() repository.CoachRepository {
	return NewCoachRepository(f.tx)
}

// NewPerformanceRepository creates a performance repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewPerformanceRepository() repository.PerformanceRepository {
	return NewPerformanceRepository(f.tx)
}

// NewInjuryRepository creates an injury repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewInjuryRepository() repository.InjuryRepository {
	return NewInjuryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If the callback panics the transaction must not leak; roll back and
	// re-panic so the delivery layer's recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
