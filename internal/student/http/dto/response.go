// Package dto provides data transfer objects for the student HTTP layer.
package dto

import "time"

// StudentResponse represents the API response for a student
type StudentResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	No             string    `json:"no"`
	Gender         int       `json:"gender"`
	Phone          string    `json:"phone"`
	IDCard         string    `json:"idCard"`
	IsCollege      int       `json:"isCollege"`
	Address        string    `json:"address"`
	Degree         int       `json:"degree"`
	GraduationDate string    `json:"graduationDate,omitempty"`
	ClazzID        *int64    `json:"clazzId"`
	ViolationCount int       `json:"violationCount"`
	ViolationScore int       `json:"violationScore"`
	CreateTime     time.Time `json:"createTime"`
	UpdateTime     time.Time `json:"updateTime"`
}
