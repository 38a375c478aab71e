package billing

import "time"

type InvoiceItemResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type InvoiceResponse struct {
	StudentID       string                `json:"student_id"`
	AdmissionNumber string                `json:"admission_number"`
	StudentName     string                `json:"student_name"`
	ClassID         string                `json:"class_id"`
	AcademicYear    string                `json:"academic_year"`
	Session         string                `json:"session"`
	Items           []InvoiceItemResponse `json:"items"`
	TotalDue        string                `json:"total_due"`
	TotalPaid       string                `json:"total_paid"`
	Balance         string                `json:"balance"`
	Status          string                `json:"status"`
	// HasStructure distinguishes "zero due because nothing is configured"
	// from "zero due because the student genuinely owes nothing".
	HasStructure bool      `json:"has_structure"`
	ComputedAt   time.Time `json:"computed_at"`
}

type DashboardResponse struct {
	AcademicYear     string    `json:"academic_year"`
	Session          string    `json:"session"`
	StudentCount     int       `json:"student_count"`
	ExpectedRevenue  string    `json:"expected_revenue"`
	CollectedRevenue string    `json:"collected_revenue"`
	Outstanding      string    `json:"outstanding"`
	PaidCount        int       `json:"paid_count"`
	PartPaymentCount int       `json:"part_payment_count"`
	UnpaidCount      int       `json:"unpaid_count"`
	ComputedAt       time.Time `json:"computed_at"`
}
