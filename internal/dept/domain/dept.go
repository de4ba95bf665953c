// Package domain defines the department model.
package domain

import "time"

// Dept represents a department.
type Dept struct {
	ID         int64
	Name       string
	CreateTime time.Time
	UpdateTime time.Time
}
