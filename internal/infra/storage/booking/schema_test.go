package booking

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Репозиторий и миграция описывают одну и ту же таблицу независимо друг от
// друга, поэтому каждая колонка из bookingColumns обязана существовать в схеме
func TestBookingColumnsMatchMigration(t *testing.T) {
	path := filepath.Join("..", "..", "..", "..", "migrations", "001_init.up.sql")
	sql, err := os.ReadFile(path)
	require.NoError(t, err)

	// Вырезаем определение таблицы bookings
	tableRe := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS bookings \((.*?)\);`)
	match := tableRe.FindSubmatch(sql)
	require.NotNil(t, match, "bookings table definition not found in migration")

	tableDef := string(match[1])

	for _, column := range bookingColumns {
		columnRe := regexp.MustCompile(`(?m)^\s*` + column + `\s`)
		assert.True(t, columnRe.MatchString(tableDef),
			"column %q used by repository is missing from bookings schema", column)
	}
}
