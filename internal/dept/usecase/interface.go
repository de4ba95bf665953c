// Package usecase implements the department business logic.
package usecase

import (
	"context"

	"github.com/tlias/tlias/internal/dept/domain"
)

// DeptRepository defines department persistence operations.
type DeptRepository interface {
	Create(ctx context.Context, dept *domain.Dept) error
	Update(ctx context.Context, dept *domain.Dept) error
	DeleteByID(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Dept, error)
	ListAll(ctx context.Context) ([]*domain.Dept, error)
}

// DeptUseCase defines department business operations.
type DeptUseCase interface {
	Create(ctx context.Context, dept *domain.Dept) error
	Update(ctx context.Context, dept *domain.Dept) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Dept, error)
	ListAll(ctx context.Context) ([]*domain.Dept, error)
}
