package dto

type MarkAttendanceRequest struct {
	Date    string   `json:"date" validate:"required"`
	UserIDs []string `json:"userIds" validate:"required,min=1,dive,uuid"`
}

// AdminAddAttendanceRequest covers the admin backfill path. AutoApprove
// defaults to true when omitted.
type AdminAddAttendanceRequest struct {
	UserID      string `json:"userId" validate:"required,uuid"`
	Date        string `json:"date" validate:"required"`
	AutoApprove *bool  `json:"autoApprove,omitempty"`
	Remarks     string `json:"remarks,omitempty" validate:"omitempty,max=255"`
}

func (r *AdminAddAttendanceRequest) Approved() bool {
	return r.AutoApprove == nil || *r.AutoApprove
}

type RejectRequest struct {
	Remarks string `json:"remarks,omitempty" validate:"omitempty,max=255"`
}

type BulkApproveRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}
