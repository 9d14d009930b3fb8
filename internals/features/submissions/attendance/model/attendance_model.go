package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceModel represents the attendances table. The composite unique
// index on (user_id, date) is the enforcement point for one-record-per-day;
// the service-level existence check is only a fast path and may race.
type AttendanceModel struct {
	ID     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Date   datatypes.Date `gorm:"not null;uniqueIndex:idx_attendances_user_date,priority:2" json:"date"`
	UserID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_attendances_user_date,priority:1;index:idx_attendances_user_status" json:"userId"`

	MarkedBy      uuid.UUID `gorm:"type:uuid;not null" json:"markedBy"`
	MarkedByAdmin bool      `gorm:"not null;default:false" json:"markedByAdmin"`

	Status     string     `gorm:"type:varchar(10);not null;default:'pending';index:idx_attendances_user_status,priority:2;index:idx_attendances_status_date" json:"status"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid" json:"approvedBy"`
	ApprovedAt *time.Time `json:"approvedAt"`
	RejectedAt *time.Time `json:"rejectedAt"`
	Remarks    string     `gorm:"size:255;default:''" json:"remarks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
