package output

import (
	"io"

	"github.com/rodaine/table"
)

// Column defines one column of tabular output.
type Column struct {
	Name string // display name
	Key  string // row map key
}

// RenderTable renders rows as a table for rich mode.
func RenderTable(w io.Writer, columns []Column, rows []map[string]string) {
	if len(rows) == 0 {
		return
	}

	headers := make([]interface{}, len(columns))
	for i, col := range columns {
		headers[i] = col.Name
	}

	tbl := table.New(headers...).WithWriter(w)
	for _, row := range rows {
		values := make([]interface{}, len(columns))
		for i, col := range columns {
			values[i] = row[col.Key]
		}
		tbl.AddRow(values...)
	}

	tbl.Print()
}
