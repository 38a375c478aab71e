package student

type AdmitStudentRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	ClassID       string `json:"class_id" binding:"required,uuid"`
	AcademicYear  string `json:"academic_year" binding:"required"`
	Term          string `json:"term" binding:"required"`
	DateOfBirth   string `json:"date_of_birth" binding:"required"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
}

type UpdateStudentRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	ClassID       string `json:"class_id" binding:"required,uuid"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	Status        string `json:"status" binding:"required,oneof=active inactive graduated"`
}

type StudentResponse struct {
	ID              string `json:"id"`
	AdmissionNumber string `json:"admission_number"`
	FullName        string `json:"full_name"`
	ClassID         string `json:"class_id"`
	AdmissionYear   string `json:"admission_year"`
	AdmissionTerm   string `json:"admission_term"`
	DateOfBirth     string `json:"date_of_birth"`
	GuardianName    string `json:"guardian_name,omitempty"`
	GuardianPhone   string `json:"guardian_phone,omitempty"`
	Status          string `json:"status"`
}
