package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestCreateUserRequestNormalizeGroupID(t *testing.T) {
	// clients send "" or "null" to mean no group
	req := CreateUserRequest{Name: " Asha ", Password: " pw ", FamilyGroupID: strptr("null")}
	req.Normalize()
	assert.Equal(t, "Asha", req.Name)
	assert.Equal(t, "pw", req.Password)
	assert.Nil(t, req.FamilyGroupID)

	req = CreateUserRequest{Name: "Asha", Password: "pw", FamilyGroupID: strptr("  ")}
	req.Normalize()
	assert.Nil(t, req.FamilyGroupID)

	id := uuid.New().String()
	req = CreateUserRequest{Name: "Asha", Password: "pw", FamilyGroupID: strptr(" " + id + " ")}
	req.Normalize()
	require.NotNil(t, req.FamilyGroupID)
	assert.Equal(t, id, *req.FamilyGroupID)
}

func TestCreateUserRequestToModel(t *testing.T) {
	adminID := uuid.New()
	groupID := uuid.New()
	req := CreateUserRequest{Name: "Asha", Password: "pw", FamilyGroupID: strptr(groupID.String())}
	req.Normalize()

	m := req.ToModel(&adminID)
	assert.Equal(t, "Asha", m.Name)
	assert.True(t, m.IsActive)
	require.NotNil(t, m.CreatedBy)
	assert.Equal(t, adminID, *m.CreatedBy)
	require.NotNil(t, m.FamilyGroupID)
	assert.Equal(t, groupID, *m.FamilyGroupID)
}

func TestUpdateUserRequestFamilyGroupChange(t *testing.T) {
	// field omitted entirely: no change
	req := UpdateUserRequest{}
	req.Normalize()
	changed, target := req.FamilyGroupChange()
	assert.False(t, changed)
	assert.Nil(t, target)

	// explicit null: detach
	req = UpdateUserRequest{FamilyGroupID: strptr("null")}
	req.Normalize()
	changed, target = req.FamilyGroupChange()
	assert.True(t, changed)
	assert.Nil(t, target)

	// real id: attach
	id := uuid.New()
	req = UpdateUserRequest{FamilyGroupID: strptr(id.String())}
	req.Normalize()
	changed, target = req.FamilyGroupChange()
	assert.True(t, changed)
	require.NotNil(t, target)
	assert.Equal(t, id, *target)
}
