// Package dto provides data transfer objects for the student HTTP layer.
package dto

import (
	"time"

	"github.com/tlias/tlias/internal/student/domain"
)

// ToStudent converts a StudentUpsertRequest DTO to a domain Student. Date
// fields are already validated against DateLayout, so parse failures map to
// nil.
func ToStudent(req StudentUpsertRequest) *domain.Student {
	return &domain.Student{
		Name:           req.Name,
		No:             req.No,
		Gender:         req.Gender,
		Phone:          req.Phone,
		IDCard:         req.IDCard,
		IsCollege:      req.IsCollege,
		Address:        req.Address,
		Degree:         req.Degree,
		GraduationDate: parseDate(req.GraduationDate),
		ClazzID:        req.ClazzID,
	}
}

// ToStudentResponse converts a domain Student to a StudentResponse DTO
// This enforces the boundary between internal domain models and external API contracts
func ToStudentResponse(student *domain.Student) StudentResponse {
	return StudentResponse{
		ID:             student.ID,
		Name:           student.Name,
		No:             student.No,
		Gender:         student.Gender,
		Phone:          student.Phone,
		IDCard:         student.IDCard,
		IsCollege:      student.IsCollege,
		Address:        student.Address,
		Degree:         student.Degree,
		GraduationDate: formatDate(student.GraduationDate),
		ClazzID:        student.ClazzID,
		ViolationCount: student.ViolationCount,
		ViolationScore: student.ViolationScore,
		CreateTime:     student.CreateTime,
		UpdateTime:     student.UpdateTime,
	}
}

// ToStudentResponses converts a slice of domain Students to response DTOs
func ToStudentResponses(students []*domain.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, ToStudentResponse(student))
	}
	return responses
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
