// Package dto provides data transfer objects for the operate-log HTTP layer.
package dto

import (
	"time"

	"github.com/tlias/tlias/internal/audit/domain"
)

// OperateLogResponse represents the API response for one operate-log record.
type OperateLogResponse struct {
	ID           int64     `json:"id"`
	OperateEmpID *int64    `json:"operateEmpId"`
	OperateTime  time.Time `json:"operateTime"`
	ClassName    string    `json:"className"`
	MethodName   string    `json:"methodName"`
	MethodParams string    `json:"methodParams"`
	ReturnValue  string    `json:"returnValue"`
	CostTime     int64     `json:"costTime"`
}

// MapOperateLogToResponse converts a domain operate log to its response DTO.
func MapOperateLogToResponse(operateLog *domain.OperateLog) OperateLogResponse {
	return OperateLogResponse{
		ID:           operateLog.ID,
		OperateEmpID: operateLog.OperateEmpID,
		OperateTime:  operateLog.OperateTime,
		ClassName:    operateLog.ClassName,
		MethodName:   operateLog.MethodName,
		MethodParams: operateLog.MethodParams,
		ReturnValue:  operateLog.ReturnValue,
		CostTime:     operateLog.CostTime,
	}
}

// MapOperateLogsToResponses converts a slice of domain operate logs.
func MapOperateLogsToResponses(operateLogs []*domain.OperateLog) []OperateLogResponse {
	responses := make([]OperateLogResponse, 0, len(operateLogs))
	for _, operateLog := range operateLogs {
		responses = append(responses, MapOperateLogToResponse(operateLog))
	}
	return responses
}
