package db_test

import (
	"testing"

	"github.com/SyedqaderEng/financeOS-sub001/internal/db"
	"github.com/SyedqaderEng/financeOS-sub001/internal/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	database := dbtest.New(t)

	version, err := db.SchemaVersion(database.DB, db.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	for _, table := range []string{"users", "goals", "goal_contributions", "transactions", "budgets"} {
		var count int
		err := database.Get(&count, `SELECT COUNT(*) FROM `+table)
		assert.NoError(t, err, table)
	}
}

func TestMigrateDown(t *testing.T) {
	database := dbtest.New(t)

	require.NoError(t, db.MigrateDown(database.DB, db.DriverSQLite))

	version, err := db.SchemaVersion(database.DB, db.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	var count int
	err = database.Get(&count, `SELECT COUNT(*) FROM budgets`)
	assert.Error(t, err)
}
