// Package domain defines the operate-log model: one append-only record per
// intercepted state-changing call.
package domain

import "time"

// OperateLog records one state-changing operation for compliance review.
// Records are append-only; nothing in this subsystem updates or deletes them.
type OperateLog struct {
	ID int64
	// OperateEmpID is the acting employee, or nil for system-internal calls
	// that carry no identity.
	OperateEmpID *int64
	OperateTime  time.Time
	// ClassName and MethodName identify the invoked operation
	// (resource group and handler operation).
	ClassName    string
	MethodName   string
	MethodParams string
	ReturnValue  string
	// CostTime is the operation latency in milliseconds.
	CostTime int64
}
