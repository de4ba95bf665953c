// Package dto provides data transfer objects for the class HTTP layer.
package dto

import (
	"time"

	"github.com/tlias/tlias/internal/clazz/domain"
)

// ToClazz converts a ClazzUpsertRequest DTO to a domain Clazz. Date fields
// are already validated against DateLayout, so parse failures map to nil.
func ToClazz(req ClazzUpsertRequest) *domain.Clazz {
	return &domain.Clazz{
		Name:      req.Name,
		Room:      req.Room,
		BeginDate: parseDate(req.BeginDate),
		EndDate:   parseDate(req.EndDate),
		MasterID:  req.MasterID,
		Subject:   req.Subject,
	}
}

// ToClazzResponse converts a domain Clazz to a ClazzResponse DTO
func ToClazzResponse(clazz *domain.Clazz) ClazzResponse {
	return ClazzResponse{
		ID:         clazz.ID,
		Name:       clazz.Name,
		Room:       clazz.Room,
		BeginDate:  formatDate(clazz.BeginDate),
		EndDate:    formatDate(clazz.EndDate),
		MasterID:   clazz.MasterID,
		Subject:    clazz.Subject,
		Status:     clazz.Status(time.Now()),
		CreateTime: clazz.CreateTime,
		UpdateTime: clazz.UpdateTime,
	}
}

// ToClazzResponses converts a slice of domain Clazzs to response DTOs
func ToClazzResponses(clazzs []*domain.Clazz) []ClazzResponse {
	responses := make([]ClazzResponse, 0, len(clazzs))
	for _, clazz := range clazzs {
		responses = append(responses, ToClazzResponse(clazz))
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
