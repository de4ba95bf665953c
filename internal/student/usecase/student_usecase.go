package usecase

import (
	"context"
	"time"

	apperrors "github.com/tlias/tlias/internal/errors"
	"github.com/tlias/tlias/internal/student/domain"
)

// studentUseCase implements StudentUseCase.
type studentUseCase struct {
	studentRepo StudentRepository
}

// NewStudentUseCase creates a new StudentUseCase.
func NewStudentUseCase(studentRepo StudentRepository) StudentUseCase {
	return &studentUseCase{studentRepo: studentRepo}
}

// Page lists students matching the filter with pagination.
func (u *studentUseCase) Page(
	ctx context.Context,
	filter domain.StudentFilter,
	offset, limit int,
) ([]*domain.Student, int64, error) {
	students, total, err := u.studentRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list students")
	}
	return students, total, nil
}

// Create saves a new student.
func (u *studentUseCase) Create(ctx context.Context, student *domain.Student) error {
	now := time.Now().UTC()
	student.CreateTime = now
	student.UpdateTime = now

	if err := u.studentRepo.Create(ctx, student); err != nil {
		return apperrors.Wrap(err, "failed to create student")
	}
	return nil
}

// Update modifies an existing student.
func (u *studentUseCase) Update(ctx context.Context, student *domain.Student) error {
	student.UpdateTime = time.Now().UTC()

	if err := u.studentRepo.Update(ctx, student); err != nil {
		return apperrors.Wrap(err, "failed to update student")
	}
	return nil
}

// Delete removes students in batch.
func (u *studentUseCase) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "no student ids provided")
	}

	if err := u.studentRepo.DeleteByIDs(ctx, ids); err != nil {
		return apperrors.Wrap(err, "failed to delete students")
	}
	return nil
}

// GetByID retrieves one student.
func (u *studentUseCase) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	student, err := u.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get student")
	}
	return student, nil
}

// AddViolation records one disciplinary violation worth the given score.
func (u *studentUseCase) AddViolation(ctx context.Context, id int64, score int) error {
	if score < 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "violation score cannot be negative")
	}

	if err := u.studentRepo.AddViolation(ctx, id, score); err != nil {
		return apperrors.Wrap(err, "failed to record violation")
	}
	return nil
}
