// Package usecase implements the class business logic.
package usecase

import (
	"context"

	"github.com/tlias/tlias/internal/clazz/domain"
)

// ClazzRepository defines class persistence operations.
type ClazzRepository interface {
	Create(ctx context.Context, clazz *domain.Clazz) error
	Update(ctx context.Context, clazz *domain.Clazz) error
	DeleteByID(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Clazz, error)
	List(ctx context.Context, filter domain.ClazzFilter, offset, limit int) ([]*domain.Clazz, int64, error)
	ListAll(ctx context.Context) ([]*domain.Clazz, error)
}

// StudentCounter reports how many students belong to a class. Implemented by
// the student repository; guards class deletion.
type StudentCounter interface {
	CountByClazzID(ctx context.Context, clazzID int64) (int64, error)
}

// ClazzUseCase defines class business operations.
type ClazzUseCase interface {
	Page(ctx context.Context, filter domain.ClazzFilter, offset, limit int) ([]*domain.Clazz, int64, error)
	Create(ctx context.Context, clazz *domain.Clazz) error
	Update(ctx context.Context, clazz *domain.Clazz) error

	// Delete refuses to remove a class that still has students.
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*domain.Clazz, error)
	ListAll(ctx context.Context) ([]*domain.Clazz, error)
}
