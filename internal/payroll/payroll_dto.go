package payroll

type BracketRequest struct {
	From string  `json:"from" binding:"required"`
	To   *string `json:"to"`
	Rate string  `json:"rate" binding:"required"`
}

type UpdateSettingsRequest struct {
	SSNITEmployeeRate string           `json:"ssnit_employee_rate" binding:"required"`
	SSNITEmployerRate string           `json:"ssnit_employer_rate" binding:"required"`
	TaxBrackets       []BracketRequest `json:"tax_brackets" binding:"required,dive"`
}

type BracketResponse struct {
	From string  `json:"from"`
	To   *string `json:"to,omitempty"`
	Rate string  `json:"rate"`
}

type SettingsResponse struct {
	SSNITEmployeeRate string            `json:"ssnit_employee_rate"`
	SSNITEmployerRate string            `json:"ssnit_employer_rate"`
	TaxBrackets       []BracketResponse `json:"tax_brackets"`
}

type RunPayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type PayslipResponse struct {
	ID            string              `json:"id"`
	StaffID       string              `json:"staff_id"`
	StaffName     string              `json:"staff_name"`
	GrossSalary   string              `json:"gross_salary"`
	SSNITEmployee string              `json:"ssnit_employee"`
	SSNITEmployer string              `json:"ssnit_employer"`
	TaxableIncome string              `json:"taxable_income"`
	IncomeTax     string              `json:"income_tax"`
	ArrearsTotal  string              `json:"arrears_total"`
	Deductions    []DeductionResponse `json:"deductions"`
	NetSalary     string              `json:"net_salary"`
}

type DeductionResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type RunResponse struct {
	ID            string            `json:"id"`
	Month         int               `json:"month"`
	Year          int               `json:"year"`
	Status        string            `json:"status"`
	EmployeeCount int               `json:"employee_count"`
	TotalAmount   string            `json:"total_amount"`
	Payslips      []PayslipResponse `json:"payslips,omitempty"`
}
