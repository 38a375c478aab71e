package feeitem

type CreateFeeItemRequest struct {
	Name       string   `json:"name" binding:"required"`
	IsOptional bool     `json:"is_optional"`
	AppliesTo  []string `json:"applies_to" binding:"omitempty,dive,oneof=new term1 term2_3"`
}

type UpdateFeeItemRequest struct {
	Name       string   `json:"name" binding:"required"`
	IsOptional bool     `json:"is_optional"`
	AppliesTo  []string `json:"applies_to" binding:"omitempty,dive,oneof=new term1 term2_3"`
}

type FeeItemResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	IsOptional bool     `json:"is_optional"`
	AppliesTo  []string `json:"applies_to"`
}
