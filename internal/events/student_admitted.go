package events

import "time"

const StudentAdmittedTopic = "school.student.admitted.v1"

type StudentAdmittedEvent struct {
	EventType       string    `json:"event_type"`
	StudentID       string    `json:"student_id"`
	AdmissionNumber string    `json:"admission_number"`
	ClassID         string    `json:"class_id"`
	AcademicYear    string    `json:"academic_year"`
	Term            string    `json:"term"`
	OccurredAt      time.Time `json:"occurred_at"`
}
