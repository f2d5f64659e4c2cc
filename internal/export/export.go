// Package export serializes a built catalog to disk. The output format is
// chosen from the path extension: SQLite for .db/.sqlite, otherwise
// delimited text (gzip-compressed when the path ends in .gz).
package export

import (
	"strings"

	"github.com/backmassage/drscat/internal/catalog"
)

// Write serializes t to path, choosing the format from the extension.
func Write(path string, t *catalog.Table) error {
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		return WriteSQLite(path, t)
	}
	return WriteCSV(path, t)
}
