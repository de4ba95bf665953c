// Package dto provides data transfer objects for the class HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/tlias/tlias/internal/validation"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// ClazzUpsertRequest represents the API request for creating or updating a
// class.
type ClazzUpsertRequest struct {
	Name      string `json:"name"`
	Room      string `json:"room"`
	BeginDate string `json:"beginDate"`
	EndDate   string `json:"endDate"`
	MasterID  *int64 `json:"masterId"`
	Subject   int    `json:"subject"`
}

// Validate validates the ClazzUpsertRequest using the jellydator/validation library
func (r *ClazzUpsertRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(2, 30).Error("name must be between 2 and 30 characters"),
		),
		validation.Field(&r.Room,
			validation.Length(0, 20).Error("room must be at most 20 characters"),
		),
		validation.Field(&r.BeginDate,
			validation.Required.Error("beginDate is required"),
			validation.Date(DateLayout).Error("beginDate must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.EndDate,
			validation.Required.Error("endDate is required"),
			validation.Date(DateLayout).Error("endDate must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.Subject,
			validation.Min(1).Error("subject must be a positive subject code"),
		),
	)
	return appValidation.WrapValidationError(err)
}
