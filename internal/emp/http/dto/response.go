// Package dto provides data transfer objects for the employee HTTP layer.
package dto

import "time"

// EmpResponse represents the API response for an employee. The password hash
// is never serialized.
type EmpResponse struct {
	ID         int64             `json:"id"`
	Username   string            `json:"username"`
	Name       string            `json:"name"`
	Gender     int               `json:"gender"`
	Image      string            `json:"image"`
	Job        int               `json:"job"`
	Salary     int               `json:"salary"`
	EntryDate  string            `json:"entryDate,omitempty"`
	DeptID     *int64            `json:"deptId"`
	ExprList   []EmpExprResponse `json:"exprList,omitempty"`
	CreateTime time.Time         `json:"createTime"`
	UpdateTime time.Time         `json:"updateTime"`
}

// EmpExprResponse is one work-experience entry in an employee response
type EmpExprResponse struct {
	ID      int64  `json:"id"`
	EmpID   int64  `json:"empId"`
	Begin   string `json:"begin,omitempty"`
	End     string `json:"end,omitempty"`
	Company string `json:"company"`
	Job     string `json:"job"`
}

// LoginResponse represents the API response for a successful login
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// PermissionsResponse lists the caller's effective permissions
type PermissionsResponse struct {
	Permissions []string `json:"permissions"`
}
