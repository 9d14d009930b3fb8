package dto

import "strings"

type CreateGroupRequest struct {
	GroupName     string   `json:"groupName" validate:"required,min=2,max=100"`
	GroupPassword string   `json:"groupPassword" validate:"required,min=3,max=100"`
	Description   string   `json:"description,omitempty"`
	Members       []string `json:"members,omitempty" validate:"omitempty,dive,uuid"`
}

func (r *CreateGroupRequest) Normalize() {
	r.GroupName = strings.TrimSpace(r.GroupName)
	r.GroupPassword = strings.TrimSpace(r.GroupPassword)
	r.Description = strings.TrimSpace(r.Description)
}

type UpdateGroupRequest struct {
	GroupName     *string   `json:"groupName,omitempty" validate:"omitempty,min=2,max=100"`
	GroupPassword *string   `json:"groupPassword,omitempty" validate:"omitempty,min=3,max=100"`
	Description   *string   `json:"description,omitempty"`
	Members       *[]string `json:"members,omitempty" validate:"omitempty,dive,uuid"`
}

func (r *UpdateGroupRequest) Normalize() {
	if r.GroupName != nil {
		v := strings.TrimSpace(*r.GroupName)
		r.GroupName = &v
	}
	if r.GroupPassword != nil {
		v := strings.TrimSpace(*r.GroupPassword)
		r.GroupPassword = &v
	}
}

type AddMemberRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}
