// Package dto provides data transfer objects for the department HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/tlias/tlias/internal/dept/domain"
	appValidation "github.com/tlias/tlias/internal/validation"
)

// DeptUpsertRequest represents the API request for creating or updating a
// department.
type DeptUpsertRequest struct {
	Name string `json:"name"`
}

// Validate validates the DeptUpsertRequest
func (r *DeptUpsertRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(2, 10).Error("name must be between 2 and 10 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// DeptResponse represents the API response for a department
type DeptResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
}

// ToDept converts a DeptUpsertRequest DTO to a domain Dept
func ToDept(req DeptUpsertRequest) *domain.Dept {
	return &domain.Dept{Name: req.Name}
}

// ToDeptResponse converts a domain Dept to a DeptResponse DTO
func ToDeptResponse(dept *domain.Dept) DeptResponse {
	return DeptResponse{
		ID:         dept.ID,
		Name:       dept.Name,
		CreateTime: dept.CreateTime,
		UpdateTime: dept.UpdateTime,
	}
}

// ToDeptResponses converts a slice of domain Depts to response DTOs
func ToDeptResponses(depts []*domain.Dept) []DeptResponse {
	responses := make([]DeptResponse, 0, len(depts))
	for _, dept := range depts {
		responses = append(responses, ToDeptResponse(dept))
	}
	return responses
}
