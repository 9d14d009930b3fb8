package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GathaModel represents the gathas table. Unlike attendance there is no
// per-day uniqueness; a user can log several gatha entries on one date.
type GathaModel struct {
	ID     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Date   datatypes.Date `gorm:"not null;index:idx_gathas_user_date,priority:2,sort:desc" json:"date"`
	UserID uuid.UUID      `gorm:"type:uuid;not null;index:idx_gathas_user_date,priority:1" json:"userId"`

	GathaType    string `gorm:"type:varchar(10);not null" json:"gathaType"`
	GathaCount   int    `gorm:"not null" json:"gathaCount"`
	GathaDetails string `gorm:"type:text;default:''" json:"gathaDetails"`

	MarkedBy      uuid.UUID `gorm:"type:uuid;not null" json:"markedBy"`
	MarkedByAdmin bool      `gorm:"not null;default:false" json:"markedByAdmin"`

	Status     string     `gorm:"type:varchar(10);not null;default:'pending';index:idx_gathas_status_date" json:"status"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid" json:"approvedBy"`
	ApprovedAt *time.Time `json:"approvedAt"`
	RejectedAt *time.Time `json:"rejectedAt"`
	Remarks    string     `gorm:"size:255;default:''" json:"remarks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (GathaModel) TableName() string {
	return "gathas"
}
