package dto

type SubmitGathaRequest struct {
	Date         string   `json:"date" validate:"required"`
	GathaType    string   `json:"gathaType" validate:"required,oneof=new revision"`
	GathaCount   int      `json:"gathaCount" validate:"required,min=1"`
	GathaDetails string   `json:"gathaDetails,omitempty" validate:"omitempty,max=2000"`
	UserIDs      []string `json:"userIds" validate:"required,min=1,dive,uuid"`
}

type AdminAddGathaRequest struct {
	UserID       string `json:"userId" validate:"required,uuid"`
	Date         string `json:"date" validate:"required"`
	GathaType    string `json:"gathaType" validate:"required,oneof=new revision"`
	GathaCount   int    `json:"gathaCount" validate:"required,min=1"`
	GathaDetails string `json:"gathaDetails,omitempty" validate:"omitempty,max=2000"`
	AutoApprove  *bool  `json:"autoApprove,omitempty"`
	Remarks      string `json:"remarks,omitempty" validate:"omitempty,max=255"`
}

func (r *AdminAddGathaRequest) Approved() bool {
	return r.AutoApprove == nil || *r.AutoApprove
}

type RejectRequest struct {
	Remarks string `json:"remarks,omitempty" validate:"omitempty,max=255"`
}

type BulkApproveRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}
