package model

import (
	"time"

	"github.com/google/uuid"

	userModel "pathshala_backend/internals/features/users/user/model"
)

// FamilyGroupModel represents the family_groups table. Membership lives on
// users.family_group_id; Members is resolved from that back-reference at
// read time, so there is no duplicated member list to drift out of sync.
type FamilyGroupModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	GroupName     string    `gorm:"size:100;not null" json:"groupName"`
	GroupPassword string    `gorm:"size:100;not null" json:"groupPassword"`
	Description   string    `gorm:"size:255;default:''" json:"description"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null" json:"createdBy"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`

	Members []userModel.UserModel `gorm:"foreignKey:FamilyGroupID" json:"members,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FamilyGroupModel) TableName() string {
	return "family_groups"
}

func (g *FamilyGroupModel) MemberCount() int {
	return len(g.Members)
}
