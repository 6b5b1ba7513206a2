package events

import "time"

const EmployeeCreatedTopic = "hrms.employee.created"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	Email        string    `json:"email"`
	OccurredAt   time.Time `json:"occurred_at"`
}
