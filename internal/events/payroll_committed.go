package events

import "time"

const PayrollCommittedTopic = "school.payroll.committed.v1"

type PayrollCommittedEvent struct {
	EventType     string    `json:"event_type"`
	PayrollRunID  string    `json:"payroll_run_id"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	EmployeeCount int       `json:"employee_count"`
	TotalAmount   string    `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
