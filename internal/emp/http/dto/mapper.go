// Package dto provides data transfer objects for the employee HTTP layer.
package dto

import (
	"time"

	authDomain "github.com/tlias/tlias/internal/auth/domain"
	"github.com/tlias/tlias/internal/emp/domain"
)

// ToEmp converts an EmpUpsertRequest DTO to a domain Emp. Date fields are
// already validated against DateLayout, so parse failures map to nil.
func ToEmp(req EmpUpsertRequest) *domain.Emp {
	emp := &domain.Emp{
		Username:  req.Username,
		Name:      req.Name,
		Gender:    req.Gender,
		Image:     req.Image,
		Job:       req.Job,
		Salary:    req.Salary,
		EntryDate: parseDate(req.EntryDate),
		DeptID:    req.DeptID,
	}
	for _, expr := range req.ExprList {
		emp.ExprList = append(emp.ExprList, domain.EmpExpr{
			Begin:   parseDate(expr.Begin),
			End:     parseDate(expr.End),
			Company: expr.Company,
			Job:     expr.Job,
		})
	}
	return emp
}

// ToEmpResponse converts a domain Emp to an EmpResponse DTO
// This enforces the boundary between internal domain models and external API contracts
func ToEmpResponse(emp *domain.Emp) EmpResponse {
	response := EmpResponse{
		ID:         emp.ID,
		Username:   emp.Username,
		Name:       emp.Name,
		Gender:     emp.Gender,
		Image:      emp.Image,
		Job:        emp.Job,
		Salary:     emp.Salary,
		EntryDate:  formatDate(emp.EntryDate),
		DeptID:     emp.DeptID,
		CreateTime: emp.CreateTime,
		UpdateTime: emp.UpdateTime,
	}
	for _, expr := range emp.ExprList {
		response.ExprList = append(response.ExprList, EmpExprResponse{
			ID:      expr.ID,
			EmpID:   expr.EmpID,
			Begin:   formatDate(expr.Begin),
			End:     formatDate(expr.End),
			Company: expr.Company,
			Job:     expr.Job,
		})
	}
	return response
}

// ToEmpResponses converts a slice of domain Emps to response DTOs
func ToEmpResponses(emps []*domain.Emp) []EmpResponse {
	responses := make([]EmpResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, ToEmpResponse(emp))
	}
	return responses
}

// ToLoginResponse converts a domain LoginInfo to a LoginResponse DTO
func ToLoginResponse(info *domain.LoginInfo) LoginResponse {
	return LoginResponse{
		ID:       info.ID,
		Username: info.Username,
		Name:     info.Name,
		Token:    info.Token,
	}
}

// ToPermissionsResponse converts a permission slice to a PermissionsResponse DTO
func ToPermissionsResponse(perms []authDomain.Permission) PermissionsResponse {
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	return PermissionsResponse{Permissions: names}
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(DateLayout)
}
