package excel

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/LendBit-p2p/lendbit-localised/config"
	"github.com/LendBit-p2p/lendbit-localised/selectors"
)

var (
	selectorsHeader  = []interface{}{"Facet", "Kind", "Name", "Signature", "Selector"}
	collisionsHeader = []interface{}{"Selector", "Signature", "Facets"}
)

// WriteSelectorsXLSX saves the report to filePath with one sheet of selectors
// and one of collisions.
func WriteSelectorsXLSX(filePath string, report *selectors.Report) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("Failed to close Excel file", "error", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), config.SelectorsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	rows := make([][]interface{}, 0, len(report.Selectors))
	for _, s := range report.Selectors {
		rows = append(rows, []interface{}{s.Facet, s.Kind, s.Name, s.Signature, s.Selector})
	}
	if err := writeRows(f, config.SelectorsSheet, selectorsHeader, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(config.CollisionsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	rows = rows[:0]
	for _, c := range report.Collisions {
		rows = append(rows, []interface{}{c.Selector, strings.Join(c.Signatures, ", "), strings.Join(c.Facets, ", ")})
	}
	if err := writeRows(f, config.CollisionsSheet, collisionsHeader, rows); err != nil {
		return err
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	all := append([][]interface{}{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
