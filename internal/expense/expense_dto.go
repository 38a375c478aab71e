package expense

type CreateEntryRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
	CategoryType string `json:"category_type" binding:"required,oneof=payroll operational capital"`
	Description  string `json:"description" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	IncurredAt   string `json:"incurred_at" binding:"required,datetime=2006-01-02"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type EntryResponse struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	IncurredAt  string `json:"incurred_at"`
}
