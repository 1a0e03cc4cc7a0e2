package checks

import (
	"fmt"
	"strings"

	"dex-viewer/core/database"
	"dex-viewer/feature/mirror"

	"gorm.io/gorm"
)

// TableReport holds the schema check of one mirror table.
type TableReport struct {
	Status         string   `json:"status"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
}

// MirrorReport holds the schema check of every mirror table.
type MirrorReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// CheckMirror compares the mirror tables in db with the columns the mirror
// models declare.
func CheckMirror(db *gorm.DB) *MirrorReport {
	report := &MirrorReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range mirror.Models() {
		table := mirror.TableName(model)

		cols, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Matched = false
			report.Errors = append(report.Errors, err.Error())
			report.Tables[table] = TableReport{Status: "error"}
			continue
		}
		if len(cols) == 0 {
			report.Matched = false
			report.Tables[table] = TableReport{Status: "missing", MissingColumns: mirror.ExpectedColumns(model)}
			continue
		}

		actual := make(map[string]database.ColumnInfo, len(cols))
		for _, c := range cols {
			actual[c.Field] = c
		}

		tr := TableReport{Status: "ok", MissingColumns: []string{}, TypeMismatches: []string{}}
		for _, want := range mirror.Columns(model) {
			got, ok := actual[want.Name]
			if !ok {
				tr.MissingColumns = append(tr.MissingColumns, want.Name)
				continue
			}
			if want.Type != "" && !typeMatches(want.Type, got.Type) {
				tr.TypeMismatches = append(tr.TypeMismatches,
					fmt.Sprintf("%s: expected %s, got %s", want.Name, want.Type, got.Type))
			}
		}
		if len(tr.MissingColumns) > 0 || len(tr.TypeMismatches) > 0 {
			tr.Status = "mismatch"
			report.Matched = false
		}
		report.Tables[table] = tr
	}

	return report
}

// typeMatches compares the base type only, so varchar(64) matches
// varchar(255) and text matches longtext.
func typeMatches(want, got string) bool {
	base := func(t string) string {
		t = strings.ToLower(t)
		if i := strings.IndexByte(t, '('); i >= 0 {
			t = t[:i]
		}
		return strings.TrimSpace(t)
	}
	w, g := base(want), base(got)
	return w == g || strings.HasSuffix(g, w)
}
