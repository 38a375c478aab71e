package payment

type PaymentItemRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type CreatePaymentRequest struct {
	StudentID    string               `json:"student_id" binding:"required,uuid"`
	Amount       string               `json:"amount" binding:"required"`
	PaidAt       string               `json:"paid_at" binding:"required"`
	AcademicYear string               `json:"academic_year" binding:"required"`
	Session      string               `json:"session" binding:"required"`
	Items        []PaymentItemRequest `json:"items" binding:"omitempty,dive"`
}

type PaymentItemResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type PaymentResponse struct {
	ID            string                `json:"id"`
	ReceiptNumber string                `json:"receipt_number"`
	StudentID     string                `json:"student_id"`
	Amount        string                `json:"amount"`
	PaidAt        string                `json:"paid_at"`
	AcademicYear  string                `json:"academic_year"`
	Session       string                `json:"session"`
	Items         []PaymentItemResponse `json:"items"`
}
