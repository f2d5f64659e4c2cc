package export

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/backmassage/drscat/internal/catalog"
	"github.com/backmassage/drscat/internal/drs"
)

// WriteSQLite writes t into a single "catalog" table in a fresh SQLite file
// at path. Missing cells become NULL, numeric cells REAL, everything else
// TEXT. An existing file is replaced so reruns stay idempotent.
func WriteSQLite(path string, t *catalog.Table) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()
	// SQLite only supports one writer; limit to a single connection.
	db.SetMaxOpenConns(1)

	cols := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		marks[i] = "?"
	}
	create := fmt.Sprintf(`CREATE TABLE catalog (%s)`, strings.Join(cols, ", "))
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("create catalog table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO catalog VALUES (%s)`, strings.Join(marks, ", ")))
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			args[i] = bindValue(v)
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert catalog row: %w", err)
		}
	}
	return tx.Commit()
}

func bindValue(v drs.Value) any {
	switch v.Kind() {
	case drs.KindNumber:
		n, _ := v.NumberVal()
		return n
	case drs.KindString:
		return v.StringVal()
	default:
		return nil
	}
}
