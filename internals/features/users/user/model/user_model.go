package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. The (name, password) pair is the
// login credential and is unique as a pair; password is stored plain by
// design (low-stakes attendance login handed out by admins).
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name     string    `gorm:"size:100;not null;uniqueIndex:idx_users_name_password,priority:1" json:"name"`
	Password string    `gorm:"size:100;not null;uniqueIndex:idx_users_name_password,priority:2" json:"-"`
	Phone    string    `gorm:"size:30;default:''" json:"phone"`
	Address  string    `gorm:"size:255;default:''" json:"address"`

	FamilyGroupID *uuid.UUID `gorm:"type:uuid;index" json:"familyGroupId"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"createdBy,omitempty"`
	IsActive      bool       `gorm:"not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}
