package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminDashboardRollup(t *testing.T) {
	dash := &AdminDashboard{PendingAttendance: 3, PendingGatha: 4}
	dash.rollup()
	assert.Equal(t, int64(7), dash.PendingApprovals)
}

func TestAdminDashboardRollupZero(t *testing.T) {
	dash := &AdminDashboard{}
	dash.rollup()
	assert.Equal(t, int64(0), dash.PendingApprovals)
}
