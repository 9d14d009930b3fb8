package dto

import (
	"strings"

	"github.com/google/uuid"

	userModel "pathshala_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateUserRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Password      string  `json:"password" validate:"required,min=1,max=100"`
	Phone         string  `json:"phone,omitempty"`
	Address       string  `json:"address,omitempty"`
	FamilyGroupID *string `json:"familyGroupId,omitempty" validate:"omitempty,uuid"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Password = strings.TrimSpace(r.Password)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	// clients send "" or "null" for no group
	if r.FamilyGroupID != nil {
		v := strings.TrimSpace(*r.FamilyGroupID)
		if v == "" || v == "null" {
			r.FamilyGroupID = nil
		} else {
			r.FamilyGroupID = &v
		}
	}
}

func (r *CreateUserRequest) ToModel(createdBy *uuid.UUID) *userModel.UserModel {
	m := &userModel.UserModel{
		Name:      r.Name,
		Password:  r.Password,
		Phone:     r.Phone,
		Address:   r.Address,
		CreatedBy: createdBy,
		IsActive:  true,
	}
	if r.FamilyGroupID != nil {
		if id, err := uuid.Parse(*r.FamilyGroupID); err == nil {
			m.FamilyGroupID = &id
		}
	}
	return m
}

// UpdateUserRequest: pointers distinguish omitted fields from empty ones.
type UpdateUserRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Password      *string `json:"password,omitempty" validate:"omitempty,min=1,max=100"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	FamilyGroupID *string `json:"familyGroupId,omitempty"`

	familyGroupSet bool
}

func (r *UpdateUserRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Password != nil {
		v := strings.TrimSpace(*r.Password)
		r.Password = &v
	}
	if r.FamilyGroupID != nil {
		r.familyGroupSet = true
		v := strings.TrimSpace(*r.FamilyGroupID)
		if v == "" || v == "null" {
			r.FamilyGroupID = nil
		} else {
			r.FamilyGroupID = &v
		}
	}
}

// FamilyGroupChange reports whether the request touches the group link and
// the parsed target group (nil means detach).
func (r *UpdateUserRequest) FamilyGroupChange() (changed bool, target *uuid.UUID) {
	if !r.familyGroupSet {
		return false, nil
	}
	if r.FamilyGroupID == nil {
		return true, nil
	}
	if id, err := uuid.Parse(*r.FamilyGroupID); err == nil {
		return true, &id
	}
	return false, nil
}
