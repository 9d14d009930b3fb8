package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel represents the admins table. Passwords are bcrypt hashes for
// every row written by this system; rows imported from the legacy store may
// still hold plain text (see auth service ComparePassword).
type AdminModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name     string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Username *string   `gorm:"size:100;uniqueIndex" json:"username,omitempty"`
	Email    string    `gorm:"size:255;default:''" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AdminModel) TableName() string {
	return "admins"
}
