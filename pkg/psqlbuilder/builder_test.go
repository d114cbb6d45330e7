package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "number").
		From("seats").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Gt{"number": 10}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, number FROM seats WHERE is_active = $1 AND number > $2", query)
	assert.Equal(t, []interface{}{true, 10}, args)
}

func TestInsert_WithReturning(t *testing.T) {
	query, args, err := Insert("holidays").
		Columns("holiday_date", "name").
		Values("2026-12-25", "Christmas").
		Suffix("RETURNING id").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO holidays (holiday_date,name) VALUES ($1,$2) RETURNING id", query)
	assert.Len(t, args, 2)
}

func TestUpdateAndDelete(t *testing.T) {
	query, _, err := Update("bookings").Set("status", "VACATED").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET status = $1 WHERE id = $2", query)

	query, _, err = Delete("holidays").Where(squirrel.Eq{"id": 3}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM holidays WHERE id = $1", query)
}
