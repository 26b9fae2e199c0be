package preview

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the table columns/rows from the current collection
func (m *Model) refreshAttrs() {
	c := m.current()
	if c.NumSubPaths() == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showAttrs = false
		m.status = "no sub-paths to describe"
		return
	}
	cols := []table.Column{
		{Title: "shape", Width: 6},
		{Title: "subpath", Width: 8},
		{Title: "points", Width: 7},
		{Title: "closed", Width: 7},
		{Title: "hull pts", Width: 8},
	}
	var rows []table.Row
	for si, s := range c {
		for pi, sp := range s {
			closed := "no"
			if sp.Closed() {
				closed = "yes"
			}
			hull := "-"
			if si < len(m.regularized) && pi < len(m.regularized[si]) {
				hull = strconv.Itoa(len(m.regularized[si][pi]))
			}
			rows = append(rows, table.Row{
				strconv.Itoa(si),
				strconv.Itoa(pi),
				strconv.Itoa(len(sp)),
				closed,
				hull,
			})
		}
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
