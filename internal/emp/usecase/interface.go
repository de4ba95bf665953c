// Package usecase implements the employee business logic, including login
// and the role lookup consumed by the authorization middleware.
package usecase

import (
	"context"

	authDomain "github.com/tlias/tlias/internal/auth/domain"
	"github.com/tlias/tlias/internal/emp/domain"
)

// EmpRepository defines employee persistence operations.
type EmpRepository interface {
	Create(ctx context.Context, emp *domain.Emp) error
	CreateExperiences(ctx context.Context, exprs []domain.EmpExpr) error
	Update(ctx context.Context, emp *domain.Emp) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	DeleteExperiencesByEmpIDs(ctx context.Context, empIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Emp, error)
	GetByUsername(ctx context.Context, username string) (*domain.Emp, error)
	List(ctx context.Context, filter domain.EmpFilter, offset, limit int) ([]*domain.Emp, int64, error)
	ListAll(ctx context.Context) ([]*domain.Emp, error)
	RoleByID(ctx context.Context, id int64) (int, error)
}

// EmpUseCase defines employee business operations.
type EmpUseCase interface {
	Page(ctx context.Context, filter domain.EmpFilter, offset, limit int) ([]*domain.Emp, int64, error)
	Create(ctx context.Context, emp *domain.Emp) error
	Update(ctx context.Context, emp *domain.Emp) error
	Delete(ctx context.Context, ids []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Emp, error)
	ListAll(ctx context.Context) ([]*domain.Emp, error)

	// Login exchanges username/password for a signed token. This is the
	// sole issuance point for credentials.
	Login(ctx context.Context, username, password string) (*domain.LoginInfo, error)

	// PermissionsFor resolves the caller's role and returns its permission set.
	PermissionsFor(ctx context.Context, empID int64) ([]authDomain.Permission, error)

	// RoleByID satisfies the authorization middleware's RoleLookup.
	RoleByID(ctx context.Context, empID int64) (int, error)
}
