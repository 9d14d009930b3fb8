package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func validSubmit() SubmitGathaRequest {
	return SubmitGathaRequest{
		Date:       "2024-03-01",
		GathaType:  "new",
		GathaCount: 2,
		UserIDs:    []string{uuid.New().String()},
	}
}

func TestSubmitGathaRequestValidation(t *testing.T) {
	req := validSubmit()
	assert.NoError(t, validate.Struct(&req))

	req = validSubmit()
	req.GathaType = "memorized"
	assert.Error(t, validate.Struct(&req), "gathaType must be new or revision")

	req = validSubmit()
	req.GathaType = "revision"
	assert.NoError(t, validate.Struct(&req))

	req = validSubmit()
	req.GathaCount = 0
	assert.Error(t, validate.Struct(&req))

	req = validSubmit()
	req.UserIDs = nil
	assert.Error(t, validate.Struct(&req))

	req = validSubmit()
	req.UserIDs = []string{"not-a-uuid"}
	assert.Error(t, validate.Struct(&req))
}

func TestAdminAddGathaRequestAutoApproveDefault(t *testing.T) {
	req := AdminAddGathaRequest{}
	assert.True(t, req.Approved())

	f := false
	req.AutoApprove = &f
	assert.False(t, req.Approved())

	tr := true
	req.AutoApprove = &tr
	assert.True(t, req.Approved())
}
