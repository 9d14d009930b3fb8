package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	groupModel "pathshala_backend/internals/features/users/family_group/model"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(2.0/3.0*100))
	assert.Equal(t, 50.0, Round2(50))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 33.33, Round2(1.0/3.0*100))
	assert.Equal(t, 100.0, Round2(99.999))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, daysBetween(day("2024-01-01"), day("2024-01-01")))
	assert.Equal(t, 31, daysBetween(day("2024-01-01"), day("2024-01-31")))
	assert.Equal(t, 29, daysBetween(day("2024-02-01"), day("2024-02-29")))
	assert.Equal(t, 0, daysBetween(day("2024-01-02"), day("2024-01-01")))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, daysBetween(start, end))
}

func TestResolveRange(t *testing.T) {
	start, end := ResolveRange("2024-01-10", "2024-01-20")
	assert.Equal(t, 10, start.Day())
	assert.Equal(t, 20, end.Day())
	assert.Equal(t, time.January, start.Month())

	// missing or bad params fall back to the current month
	start, end = ResolveRange("", "")
	now := time.Now()
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, now.Month(), end.Month())

	start2, _ := ResolveRange("not-a-date", "2024-01-20")
	assert.Equal(t, start.Day(), start2.Day())
}

func TestSummarizeGroup(t *testing.T) {
	group := &groupModel.FamilyGroupModel{ID: uuid.New(), GroupName: "Sharma Family"}
	members := []StudentReport{
		{AttendanceDays: 5, GathaNew: 2, GathaRevision: 1},
		{AttendanceDays: 3, GathaNew: 0, GathaRevision: 4},
		{AttendanceDays: 0, GathaNew: 0, GathaRevision: 0},
	}

	summary := summarizeGroup(group, members)
	assert.Equal(t, group.ID, summary.GroupID)
	assert.Equal(t, "Sharma Family", summary.GroupName)
	assert.Equal(t, 3, summary.MemberCount)
	assert.Equal(t, int64(8), summary.TotalAttendance)
	assert.Equal(t, 2.67, summary.AvgAttendance)
	assert.Equal(t, int64(7), summary.TotalGatha)
	assert.Equal(t, 2.33, summary.AvgGatha)
}

func TestSummarizeGroupEmpty(t *testing.T) {
	summary := summarizeGroup(&groupModel.FamilyGroupModel{GroupName: "New Group"}, nil)
	assert.Equal(t, 0, summary.MemberCount)
	assert.Equal(t, 0.0, summary.AvgAttendance)
	assert.Equal(t, 0.0, summary.AvgGatha)
}
