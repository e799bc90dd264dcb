// Package export renders calculator outcomes as xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/joeyg6393/fincalcs/service"
)

const (
	SummarySheet  = "Summary"
	ScheduleSheet = "Schedule"

	// excelize rejects sheet names longer than this.
	maxSheetName = 31
)

// ContentType is the MIME type of the rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook renders outcome into a workbook. The Summary sheet lists the
// scalar result fields. Each array of records in the result (amortization
// schedule, yearly breakdown, payoff plan) gets its own sheet; the first one
// is named Schedule.
func Workbook(calc service.Calculator, outcome service.Outcome) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	rows := [][]any{
		{"Field", "Value"},
		{"Calculator", calc.Title},
		{"ID", outcome.Calculator},
		{"Status", string(outcome.Status)},
	}
	if outcome.Reason != "" {
		rows = append(rows, []any{"Reason", outcome.Reason})
	}

	var tables []field
	if len(outcome.Result) > 0 {
		parsed, err := parseOrdered(outcome.Result)
		if err != nil {
			return nil, fmt.Errorf("failed to read result: %w", err)
		}
		obj, ok := parsed.(object)
		if !ok {
			obj = object{{Key: "result", Value: parsed}}
		}

		scalars := object{}
		for _, fld := range obj {
			if isTable(fld.Value) {
				tables = append(tables, fld)
				continue
			}
			if nested, ok := fld.Value.(object); ok {
				flatten(fld.Key, nested, &scalars)
				continue
			}
			scalars = append(scalars, fld)
		}
		for _, fld := range scalars {
			rows = append(rows, []any{fld.Key, cellValue(fld.Value)})
		}
	}

	if err := writeRows(f, SummarySheet, rows, headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SummarySheet, "A", "A", 30)
	_ = f.SetColWidth(SummarySheet, "B", "B", 40)

	names := sheetNames{strings.ToLower(SummarySheet): true}
	for i, table := range tables {
		key := table.Key
		if i == 0 {
			key = ScheduleSheet
		}
		name := names.next(key)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		if err := writeRows(f, name, tableRows(table.Value.([]any)), headerStyle); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Write renders outcome and writes the workbook to w.
func Write(w io.Writer, calc service.Calculator, outcome service.Outcome) error {
	f, err := Workbook(calc, outcome)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// tableRows lays out records as a header row plus one row per record.
// Columns follow the order in which keys first appear.
func tableRows(items []any) [][]any {
	var columns []string
	seen := map[string]int{}
	records := make([]object, 0, len(items))

	for _, item := range items {
		flat := object{}
		flatten("", item.(object), &flat)
		for _, fld := range flat {
			if _, ok := seen[fld.Key]; !ok {
				seen[fld.Key] = len(columns)
				columns = append(columns, fld.Key)
			}
		}
		records = append(records, flat)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	rows := [][]any{header}
	for _, rec := range records {
		row := make([]any, len(columns))
		for i := range row {
			row[i] = ""
		}
		for _, fld := range rec {
			row[seen[fld.Key]] = cellValue(fld.Value)
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return nil
}

// sheetNames hands out unique sheet names. Excel compares sheet names
// without regard to case.
type sheetNames map[string]bool

func (n sheetNames) next(key string) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, key)
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Table"
	}

	name := truncateRunes(base, maxSheetName)
	for i := 2; n[strings.ToLower(name)]; i++ {
		suffix := fmt.Sprintf("_%d", i)
		name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	n[strings.ToLower(name)] = true
	return name
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
