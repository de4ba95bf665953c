// Package domain defines the employee model.
package domain

import "time"

// Emp represents an employee record. The Job field doubles as the role code
// consumed by the authorization layer.
type Emp struct {
	ID         int64
	Username   string
	Password   string // Argon2id hash, never serialized
	Name       string
	Gender     int
	Image      string
	Job        int
	Salary     int
	EntryDate  *time.Time
	DeptID     *int64
	ExprList   []EmpExpr
	CreateTime time.Time
	UpdateTime time.Time
}

// EmpExpr is one work-experience row attached to an employee.
type EmpExpr struct {
	ID      int64
	EmpID   int64
	Begin   *time.Time
	End     *time.Time
	Company string
	Job     string
}

// LoginInfo is the login result handed back to the client.
type LoginInfo struct {
	ID       int64
	Username string
	Name     string
	Token    string
}

// EmpFilter holds the optional page-query filters.
type EmpFilter struct {
	Name   string
	Gender *int
	Begin  *time.Time
	End    *time.Time
}
