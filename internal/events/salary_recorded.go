package events

import "time"

const SalaryRecordedTopic = "payroll.salary.ledger.v1"

type SalaryRecordedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	SalaryID     string    `json:"salary_id"`
	EmployeeID   string    `json:"employee_id"`
	DepartmentID string    `json:"department_id"`
	NetSalary    int64     `json:"net_salary"`
	Month        string    `json:"month"`
	OccurredAt   time.Time `json:"occurred_at"`
}
