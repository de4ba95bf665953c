// Package dto provides data transfer objects for the student HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/tlias/tlias/internal/validation"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// StudentUpsertRequest represents the API request for creating or updating a
// student.
type StudentUpsertRequest struct {
	Name           string `json:"name"`
	No             string `json:"no"`
	Gender         int    `json:"gender"`
	Phone          string `json:"phone"`
	IDCard         string `json:"idCard"`
	IsCollege      int    `json:"isCollege"`
	Address        string `json:"address"`
	Degree         int    `json:"degree"`
	GraduationDate string `json:"graduationDate"`
	ClazzID        *int64 `json:"clazzId"`
}

// Validate validates the StudentUpsertRequest using the jellydator/validation library
func (r *StudentUpsertRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(2, 10).Error("name must be between 2 and 10 characters"),
		),
		validation.Field(&r.No,
			validation.Required.Error("no is required"),
			validation.Length(10, 10).Error("no must be exactly 10 characters"),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("gender is required"),
			validation.In(1, 2).Error("gender must be 1 or 2"),
		),
		validation.Field(&r.Phone,
			validation.Required.Error("phone is required"),
			appValidation.Phone,
		),
		validation.Field(&r.IDCard,
			validation.Length(18, 18).Error("idCard must be exactly 18 characters"),
		),
		validation.Field(&r.IsCollege,
			validation.In(0, 1).Error("isCollege must be 0 or 1"),
		),
		validation.Field(&r.Address,
			validation.Length(0, 100).Error("address must be at most 100 characters"),
		),
		validation.Field(&r.Degree,
			validation.Min(1).Error("degree must be between 1 and 8"),
			validation.Max(8).Error("degree must be between 1 and 8"),
		),
		validation.Field(&r.GraduationDate,
			validation.Date(DateLayout).Error("graduationDate must be in YYYY-MM-DD format"),
		),
	)
	return appValidation.WrapValidationError(err)
}
