package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"

	"sgthelper/internal/seg"
)

// refreshTable rebuilds the records table from the session's record set.
func (m *Model) refreshTable() bool {
	cols, rows := buildRecordRows(m.session.Records(), m.cfg.LayoutParams())
	if len(rows) == 0 {
		m.showTable = false
		return false
	}
	tcols := make([]table.Column, 0, len(cols))
	for j, c := range cols {
		w := runewidth.StringWidth(c) + 2
		for _, r := range rows {
			w = max(w, runewidth.StringWidth(r[j])+2)
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, 24)})
	}
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, table.Row(r))
	}
	// clear rows first so columns and rows never disagree in length
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	return true
}

// buildRecordRows lays out records as (columns, rows): line number, every
// field in schema order, then span and level.
func buildRecordRows(recs []seg.Record, p seg.LayoutParams) ([]string, [][]string) {
	if len(recs) == 0 {
		return nil, nil
	}
	cols := []string{"#"}
	for _, f := range recs[0].Fields {
		cols = append(cols, f.Name)
	}
	cols = append(cols, "span", "level")

	placements := seg.Layout(recs, p, 0)
	rows := make([][]string, 0, len(recs))
	for i, r := range recs {
		row := make([]string, 0, len(cols))
		row = append(row, strconv.Itoa(r.Line))
		for _, f := range r.Fields {
			row = append(row, f.Value)
		}
		row = append(row, strconv.FormatFloat(r.Span(), 'f', -1, 64), strconv.Itoa(placements[i].Level))
		rows = append(rows, row)
	}
	return cols, rows
}
