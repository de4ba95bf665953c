// Package domain defines the student model.
package domain

import "time"

// Student represents an enrolled student record.
type Student struct {
	ID             int64
	Name           string
	No             string
	Gender         int
	Phone          string
	IDCard         string
	IsCollege      int
	Address        string
	Degree         int
	GraduationDate *time.Time
	ClazzID        *int64
	ViolationCount int
	ViolationScore int
	CreateTime     time.Time
	UpdateTime     time.Time
}

// StudentFilter holds the optional page-query filters.
type StudentFilter struct {
	Name    string
	Degree  *int
	ClazzID *int64
}
