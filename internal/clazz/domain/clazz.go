// Package domain defines the class model.
package domain

import "time"

// Clazz represents a training class.
type Clazz struct {
	ID         int64
	Name       string
	Room       string
	BeginDate  *time.Time
	EndDate    *time.Time
	MasterID   *int64
	Subject    int
	CreateTime time.Time
	UpdateTime time.Time
}

// Status values derived from the class schedule.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Status reports the schedule state of the class at the given time.
func (c *Clazz) Status(now time.Time) string {
	if c.BeginDate == nil || c.EndDate == nil {
		return StatusNotStarted
	}
	switch {
	case now.Before(*c.BeginDate):
		return StatusNotStarted
	case now.After(*c.EndDate):
		return StatusFinished
	default:
		return StatusInProgress
	}
}

// ClazzFilter holds the optional page-query filters.
type ClazzFilter struct {
	Name  string
	Begin *time.Time
	End   *time.Time
}
