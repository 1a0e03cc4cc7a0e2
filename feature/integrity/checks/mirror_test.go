package checks

import (
	"context"
	"regexp"
	"testing"

	"dex-viewer/assets"
	"dex-viewer/core/catalog"
	"dex-viewer/core/database"
	"dex-viewer/feature/mirror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func showColumns(model any) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, c := range mirror.Columns(model) {
		typ := c.Type
		if typ == "" {
			typ = "bigint"
		}
		rows.AddRow(c.Name, typ, "YES", "", nil, "")
	}
	return rows
}

func TestCheckMirror_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	report := CheckMirror(db)
	assert.False(t, report.Matched)
	assert.Equal(t, "missing", report.Tables["dex_pokemon"].Status)
	assert.Contains(t, report.Tables["dex_pokemon"].MissingColumns, "internal_name")

	cat, err := catalog.New(catalog.Config{Mode: catalog.ModeStatic}, assets.JSON(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, mirror.NewService(db, cat, zap.NewNop()).Migrate(context.Background()))

	report = CheckMirror(db)
	assert.True(t, report.Matched, report.Tables)
	assert.Len(t, report.Tables, len(mirror.Models()))
	for table, tr := range report.Tables {
		assert.Equal(t, "ok", tr.Status, table)
	}
}

func TestCheckMirror_Mismatch(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE dex_items (id integer primary key, internal_name varchar(64), name text)").Error)

	report := CheckMirror(db)
	assert.False(t, report.Matched)

	items := report.Tables["dex_items"]
	assert.Equal(t, "mismatch", items.Status)
	assert.Equal(t, []string{"pocket", "price", "machine"}, items.MissingColumns)
	assert.Equal(t, []string{"name: expected varchar(64), got text"}, items.TypeMismatches)
}

func TestCheckMirror_QueryError(t *testing.T) {
	db, sqlMock := setupMockDB(t)

	models := mirror.Models()
	sqlMock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `dex_pokemon`")).WillReturnRows(showColumns(models[0]))
	sqlMock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `dex_moves`")).WillReturnError(assert.AnError)
	for _, m := range models[2:] {
		sqlMock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `" + mirror.TableName(m) + "`")).WillReturnRows(showColumns(m))
	}

	report := CheckMirror(db)
	assert.False(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["dex_pokemon"].Status)
	assert.Equal(t, "error", report.Tables["dex_moves"].Status)
	assert.Equal(t, "ok", report.Tables["dex_abilities"].Status)
	assert.Len(t, report.Errors, 1)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestTypeMatches(t *testing.T) {
	assert.True(t, typeMatches("varchar(64)", "varchar(255)"))
	assert.True(t, typeMatches("text", "longtext"))
	assert.True(t, typeMatches("text", "TEXT"))
	assert.False(t, typeMatches("varchar(64)", "text"))
}
