package feestructure

type StructureItemRequest struct {
	FeeItemID string `json:"fee_item_id" binding:"required,uuid"`
	Amount    string `json:"amount" binding:"required"`
}

type CreateFeeStructureRequest struct {
	ClassID        string                 `json:"class_id" binding:"required,uuid"`
	AcademicTermID string                 `json:"academic_term_id" binding:"required,uuid"`
	Items          []StructureItemRequest `json:"items" binding:"required,dive"`
}

type UpdateFeeStructureRequest struct {
	Items []StructureItemRequest `json:"items" binding:"required,dive"`
}

type StructureItemResponse struct {
	FeeItemID string `json:"fee_item_id"`
	Amount    string `json:"amount"`
}

type FeeStructureResponse struct {
	ID             string                  `json:"id"`
	ClassID        string                  `json:"class_id"`
	AcademicTermID string                  `json:"academic_term_id"`
	Items          []StructureItemResponse `json:"items"`
}
