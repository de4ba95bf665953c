package usecase

import (
	"context"
	"time"

	"github.com/tlias/tlias/internal/dept/domain"
	apperrors "github.com/tlias/tlias/internal/errors"
)

// deptUseCase implements DeptUseCase.
type deptUseCase struct {
	deptRepo DeptRepository
}

// NewDeptUseCase creates a new DeptUseCase.
func NewDeptUseCase(deptRepo DeptRepository) DeptUseCase {
	return &deptUseCase{deptRepo: deptRepo}
}

// Create saves a new department.
func (u *deptUseCase) Create(ctx context.Context, dept *domain.Dept) error {
	now := time.Now().UTC()
	dept.CreateTime = now
	dept.UpdateTime = now

	if err := u.deptRepo.Create(ctx, dept); err != nil {
		return apperrors.Wrap(err, "failed to create department")
	}
	return nil
}

// Update modifies an existing department.
func (u *deptUseCase) Update(ctx context.Context, dept *domain.Dept) error {
	dept.UpdateTime = time.Now().UTC()

	if err := u.deptRepo.Update(ctx, dept); err != nil {
		return apperrors.Wrap(err, "failed to update department")
	}
	return nil
}

// Delete removes a department by ID.
func (u *deptUseCase) Delete(ctx context.Context, id int64) error {
	if err := u.deptRepo.DeleteByID(ctx, id); err != nil {
		return apperrors.Wrap(err, "failed to delete department")
	}
	return nil
}

// GetByID retrieves one department.
func (u *deptUseCase) GetByID(ctx context.Context, id int64) (*domain.Dept, error) {
	dept, err := u.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get department")
	}
	return dept, nil
}

// ListAll retrieves all departments.
func (u *deptUseCase) ListAll(ctx context.Context) ([]*domain.Dept, error) {
	depts, err := u.deptRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list departments")
	}
	return depts, nil
}
