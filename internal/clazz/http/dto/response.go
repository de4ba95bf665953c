// Package dto provides data transfer objects for the class HTTP layer.
package dto

import "time"

// ClazzResponse represents the API response for a class. Status is derived
// from the schedule, not stored.
type ClazzResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Room       string    `json:"room"`
	BeginDate  string    `json:"beginDate,omitempty"`
	EndDate    string    `json:"endDate,omitempty"`
	MasterID   *int64    `json:"masterId"`
	Subject    int       `json:"subject"`
	Status     string    `json:"status"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
}
