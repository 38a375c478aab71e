package staff

type ArrearRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount" binding:"required"`
}

type DeductionRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type CreateStaffRequest struct {
	StaffNumber string             `json:"staff_number" binding:"required"`
	FullName    string             `json:"full_name" binding:"required"`
	Role        string             `json:"role"`
	GrossSalary string             `json:"gross_salary" binding:"required"`
	Arrears     []ArrearRequest    `json:"arrears" binding:"omitempty,dive"`
	Deductions  []DeductionRequest `json:"deductions" binding:"omitempty,dive"`
}

type UpdateStaffRequest struct {
	FullName    string             `json:"full_name" binding:"required"`
	Role        string             `json:"role"`
	GrossSalary string             `json:"gross_salary" binding:"required"`
	Arrears     []ArrearRequest    `json:"arrears" binding:"omitempty,dive"`
	Deductions  []DeductionRequest `json:"deductions" binding:"omitempty,dive"`
	Status      string             `json:"status" binding:"required,oneof=active inactive"`
}

type ArrearResponse struct {
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
}

type DeductionResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type StaffResponse struct {
	ID          string              `json:"id"`
	StaffNumber string              `json:"staff_number"`
	FullName    string              `json:"full_name"`
	Role        string              `json:"role,omitempty"`
	GrossSalary string              `json:"gross_salary"`
	Arrears     []ArrearResponse    `json:"arrears"`
	Deductions  []DeductionResponse `json:"deductions"`
	Status      string              `json:"status"`
}
