package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	helper "pathshala_backend/internals/helpers"
)

// dryRunDB builds a connection-less gorm instance that records every query
// it would have executed.
func dryRunDB(t *testing.T, captured *[]string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		*captured = append(*captured, tx.Statement.SQL.String())
		// dry run keeps built SQL on the statement; clear it so the next
		// finisher on the chain builds its own query
		tx.Statement.SQL.Reset()
		tx.Statement.Vars = nil
	})
	require.NoError(t, err)
	return db
}

// The admin review queue lists newest submissions first.
func TestListPendingOrdersByCreationDesc(t *testing.T) {
	var queries []string
	db := dryRunDB(t, &queries)

	_, _, err := ListPending(db, ListQuery{Paging: helper.Paging{Page: 1, Limit: 10}})
	require.NoError(t, err)

	var ordered string
	for _, q := range queries {
		if strings.Contains(q, "attendances") && strings.Contains(q, "ORDER BY") {
			ordered = q
		}
	}
	require.NotEmpty(t, ordered, "no ordered attendances query captured")
	assert.Contains(t, ordered, "created_at DESC")
	assert.NotContains(t, ordered, "date ASC")
	assert.Contains(t, ordered, "status")
}

func TestListForUsersOrdersByDateDesc(t *testing.T) {
	var queries []string
	db := dryRunDB(t, &queries)

	_, _, err := ListForUsers(db, []string{"00000000-0000-0000-0000-000000000001"},
		ListQuery{Paging: helper.Paging{Page: 1, Limit: 10}})
	require.NoError(t, err)

	var ordered string
	for _, q := range queries {
		if strings.Contains(q, "ORDER BY") {
			ordered = q
		}
	}
	require.NotEmpty(t, ordered)
	assert.Contains(t, ordered, "date DESC")
}
