package term

type CreateTermRequest struct {
	AcademicYear string `json:"academic_year" binding:"required"`
	Session      string `json:"session" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
}

type UpdateTermRequest struct {
	AcademicYear string `json:"academic_year" binding:"required"`
	Session      string `json:"session" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
}

type TermResponse struct {
	ID           string `json:"id"`
	AcademicYear string `json:"academic_year"`
	Session      string `json:"session"`
	TermNumber   int    `json:"term_number"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsCurrent    bool   `json:"is_current"`
}
