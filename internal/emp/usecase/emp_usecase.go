package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/allisson/go-pwdhash"

	authDomain "github.com/tlias/tlias/internal/auth/domain"
	authService "github.com/tlias/tlias/internal/auth/service"
	"github.com/tlias/tlias/internal/database"
	"github.com/tlias/tlias/internal/emp/domain"
	apperrors "github.com/tlias/tlias/internal/errors"
)

// defaultPassword is assigned when a new employee is created without one.
const defaultPassword = "123456"

// empUseCase implements EmpUseCase.
type empUseCase struct {
	txManager      database.TxManager
	empRepo        EmpRepository
	tokenCodec     authService.TokenCodec
	passwordHasher *pwdhash.PasswordHasher
}

// NewEmpUseCase creates a new EmpUseCase with the provided dependencies.
func NewEmpUseCase(
	txManager database.TxManager,
	empRepo EmpRepository,
	tokenCodec authService.TokenCodec,
) (EmpUseCase, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &empUseCase{
		txManager:      txManager,
		empRepo:        empRepo,
		tokenCodec:     tokenCodec,
		passwordHasher: hasher,
	}, nil
}

// Page lists employees matching the filter with pagination.
func (u *empUseCase) Page(
	ctx context.Context,
	filter domain.EmpFilter,
	offset, limit int,
) ([]*domain.Emp, int64, error) {
	emps, total, err := u.empRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list employees")
	}
	return emps, total, nil
}

// Create saves an employee and their work-experience rows in one transaction.
func (u *empUseCase) Create(ctx context.Context, emp *domain.Emp) error {
	password := emp.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := u.passwordHasher.Hash([]byte(password))
	if err != nil {
		return apperrors.Wrap(err, "failed to hash password")
	}
	emp.Password = hash

	now := time.Now().UTC()
	emp.CreateTime = now
	emp.UpdateTime = now

	return u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.empRepo.Create(ctx, emp); err != nil {
			return apperrors.Wrap(err, "failed to create employee")
		}

		if len(emp.ExprList) == 0 {
			return nil
		}
		for i := range emp.ExprList {
			emp.ExprList[i].EmpID = emp.ID
		}
		if err := u.empRepo.CreateExperiences(ctx, emp.ExprList); err != nil {
			return apperrors.Wrap(err, "failed to create employee experiences")
		}
		return nil
	})
}

// Update modifies an employee and replaces their work-experience rows in one
// transaction.
func (u *empUseCase) Update(ctx context.Context, emp *domain.Emp) error {
	emp.UpdateTime = time.Now().UTC()

	return u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.empRepo.Update(ctx, emp); err != nil {
			return apperrors.Wrap(err, "failed to update employee")
		}

		if err := u.empRepo.DeleteExperiencesByEmpIDs(ctx, []int64{emp.ID}); err != nil {
			return apperrors.Wrap(err, "failed to delete employee experiences")
		}

		if len(emp.ExprList) == 0 {
			return nil
		}
		for i := range emp.ExprList {
			emp.ExprList[i].EmpID = emp.ID
		}
		if err := u.empRepo.CreateExperiences(ctx, emp.ExprList); err != nil {
			return apperrors.Wrap(err, "failed to create employee experiences")
		}
		return nil
	})
}

// Delete removes employees and their work-experience rows in one transaction.
func (u *empUseCase) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "no employee ids provided")
	}

	return u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.empRepo.DeleteByIDs(ctx, ids); err != nil {
			return apperrors.Wrap(err, "failed to delete employees")
		}
		if err := u.empRepo.DeleteExperiencesByEmpIDs(ctx, ids); err != nil {
			return apperrors.Wrap(err, "failed to delete employee experiences")
		}
		return nil
	})
}

// GetByID retrieves one employee with work-experience rows.
func (u *empUseCase) GetByID(ctx context.Context, id int64) (*domain.Emp, error) {
	emp, err := u.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get employee")
	}
	return emp, nil
}

// ListAll retrieves all employees (name options for the frontend).
func (u *empUseCase) ListAll(ctx context.Context) ([]*domain.Emp, error) {
	emps, err := u.empRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	return emps, nil
}

// Login verifies the credentials and issues a signed token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (u *empUseCase) Login(ctx context.Context, username, password string) (*domain.LoginInfo, error) {
	emp, err := u.empRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.Wrap(err, "failed to get employee by username")
	}

	ok, err := u.passwordHasher.Verify([]byte(password), emp.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to verify password")
	}
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}

	token, err := u.tokenCodec.Issue(authDomain.Claims{ID: emp.ID, Username: emp.Username})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	return &domain.LoginInfo{
		ID:       emp.ID,
		Username: emp.Username,
		Name:     emp.Name,
		Token:    token,
	}, nil
}

// PermissionsFor resolves the employee's role and returns its permission set
// sorted for stable responses.
func (u *empUseCase) PermissionsFor(ctx context.Context, empID int64) ([]authDomain.Permission, error) {
	role, err := u.RoleByID(ctx, empID)
	if err != nil {
		return nil, err
	}

	set := authDomain.ResolvePermissions(role)
	perms := make([]authDomain.Permission, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms, nil
}

// RoleByID queries the employee's role code. Used by the authorization
// middleware as its role lookup collaborator.
func (u *empUseCase) RoleByID(ctx context.Context, empID int64) (int, error) {
	role, err := u.empRepo.RoleByID(ctx, empID)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to look up role")
	}
	return role, nil
}
