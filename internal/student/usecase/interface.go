// Package usecase implements the student business logic.
package usecase

import (
	"context"

	"github.com/tlias/tlias/internal/student/domain"
)

// StudentRepository defines student persistence operations.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	Update(ctx context.Context, student *domain.Student) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	List(ctx context.Context, filter domain.StudentFilter, offset, limit int) ([]*domain.Student, int64, error)

	// AddViolation increments the violation count by one and the violation
	// score by the given amount.
	AddViolation(ctx context.Context, id int64, score int) error

	// CountByClazzID reports how many students belong to a class. Consumed
	// by the class module's delete guard.
	CountByClazzID(ctx context.Context, clazzID int64) (int64, error)
}

// StudentUseCase defines student business operations.
type StudentUseCase interface {
	Page(ctx context.Context, filter domain.StudentFilter, offset, limit int) ([]*domain.Student, int64, error)
	Create(ctx context.Context, student *domain.Student) error
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, ids []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	AddViolation(ctx context.Context, id int64, score int) error
}
