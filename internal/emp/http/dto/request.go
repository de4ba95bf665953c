// Package dto provides data transfer objects for the employee HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/tlias/tlias/internal/validation"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// EmpUpsertRequest represents the API request for creating or updating an
// employee.
type EmpUpsertRequest struct {
	Username  string           `json:"username"`
	Name      string           `json:"name"`
	Gender    int              `json:"gender"`
	Image     string           `json:"image"`
	Job       int              `json:"job"`
	Salary    int              `json:"salary"`
	EntryDate string           `json:"entryDate"`
	DeptID    *int64           `json:"deptId"`
	ExprList  []EmpExprRequest `json:"exprList"`
}

// EmpExprRequest is one work-experience entry in an employee request
type EmpExprRequest struct {
	Begin   string `json:"begin"`
	End     string `json:"end"`
	Company string `json:"company"`
	Job     string `json:"job"`
}

// Validate validates the EmpUpsertRequest using the jellydator/validation library
func (r *EmpUpsertRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(2, 20).Error("username must be between 2 and 20 characters"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(2, 10).Error("name must be between 2 and 10 characters"),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("gender is required"),
			validation.In(1, 2).Error("gender must be 1 or 2"),
		),
		validation.Field(&r.Job,
			validation.Min(1).Error("job must be a positive role code"),
		),
		validation.Field(&r.Salary,
			validation.Min(0).Error("salary cannot be negative"),
		),
		validation.Field(&r.EntryDate,
			validation.Date(DateLayout).Error("entryDate must be in YYYY-MM-DD format"),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	for i := range r.ExprList {
		if err := r.ExprList[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates one work-experience entry
func (r *EmpExprRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Begin,
			validation.Date(DateLayout).Error("begin must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.End,
			validation.Date(DateLayout).Error("end must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.Company,
			validation.Length(0, 100).Error("company must be at most 100 characters"),
		),
		validation.Field(&r.Job,
			validation.Length(0, 100).Error("job must be at most 100 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// LoginRequest represents the API request for employee login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}
