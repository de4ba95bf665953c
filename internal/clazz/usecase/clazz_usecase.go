package usecase

import (
	"context"
	"time"

	"github.com/tlias/tlias/internal/clazz/domain"
	apperrors "github.com/tlias/tlias/internal/errors"
)

// clazzUseCase implements ClazzUseCase.
type clazzUseCase struct {
	clazzRepo      ClazzRepository
	studentCounter StudentCounter
}

// NewClazzUseCase creates a new ClazzUseCase.
func NewClazzUseCase(clazzRepo ClazzRepository, studentCounter StudentCounter) ClazzUseCase {
	return &clazzUseCase{
		clazzRepo:      clazzRepo,
		studentCounter: studentCounter,
	}
}

// Page lists classes matching the filter with pagination.
func (u *clazzUseCase) Page(
	ctx context.Context,
	filter domain.ClazzFilter,
	offset, limit int,
) ([]*domain.Clazz, int64, error) {
	clazzs, total, err := u.clazzRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list classes")
	}
	return clazzs, total, nil
}

// Create saves a new class.
func (u *clazzUseCase) Create(ctx context.Context, clazz *domain.Clazz) error {
	now := time.Now().UTC()
	clazz.CreateTime = now
	clazz.UpdateTime = now

	if err := u.clazzRepo.Create(ctx, clazz); err != nil {
		return apperrors.Wrap(err, "failed to create class")
	}
	return nil
}

// Update modifies an existing class.
func (u *clazzUseCase) Update(ctx context.Context, clazz *domain.Clazz) error {
	clazz.UpdateTime = time.Now().UTC()

	if err := u.clazzRepo.Update(ctx, clazz); err != nil {
		return apperrors.Wrap(err, "failed to update class")
	}
	return nil
}

// Delete removes a class. A class that still has students cannot be removed.
func (u *clazzUseCase) Delete(ctx context.Context, id int64) error {
	count, err := u.studentCounter.CountByClazzID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to count students in class")
	}
	if count > 0 {
		return apperrors.Wrap(apperrors.ErrConflict, "class still has students")
	}

	if err := u.clazzRepo.DeleteByID(ctx, id); err != nil {
		return apperrors.Wrap(err, "failed to delete class")
	}
	return nil
}

// GetByID retrieves one class.
func (u *clazzUseCase) GetByID(ctx context.Context, id int64) (*domain.Clazz, error) {
	clazz, err := u.clazzRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get class")
	}
	return clazz, nil
}

// ListAll retrieves all classes (options for the frontend).
func (u *clazzUseCase) ListAll(ctx context.Context) ([]*domain.Clazz, error) {
	clazzs, err := u.clazzRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list classes")
	}
	return clazzs, nil
}
