package events

import "time"

const EmployeeDeletedTopic = "hrms.employee.deleted"

type EmployeeDeletedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	OccurredAt   time.Time `json:"occurred_at"`
}
