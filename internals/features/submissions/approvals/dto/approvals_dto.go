package dto

type BulkApproveRequest struct {
	Type string   `json:"type" validate:"required,oneof=attendance gatha"`
	IDs  []string `json:"ids" validate:"required,min=1,dive,uuid"`
}
