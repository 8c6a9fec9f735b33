// Package report renders equipment records as spreadsheet exports.
// Records are written in the order given; callers pass the sorted list.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/pkordes/decom-ledger/internal/domain"
)

// SheetName is the worksheet the XLSX export writes to.
const SheetName = "Decommissioned"

// Headers are the column names written as the first row of every export.
var Headers = []string{
	"id", "kind", "name", "serial_number", "registration_date",
	"last_maintenance_date", "decommission_date", "reason",
}

// WriteCSV encodes records as CSV, header row first.
func WriteCSV(w io.Writer, records []domain.Equipment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("report.WriteCSV: %w", err)
	}
	for _, e := range records {
		if err := cw.Write(row(e)); err != nil {
			return fmt.Errorf("report.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report.WriteCSV: %w", err)
	}
	return nil
}

// WriteXLSX encodes records as a single-sheet workbook with a bold header row.
func WriteXLSX(w io.Writer, records []domain.Equipment) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("report.WriteXLSX: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &Headers); err != nil {
		return fmt.Errorf("report.WriteXLSX: header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report.WriteXLSX: style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, style); err != nil {
		return fmt.Errorf("report.WriteXLSX: style: %w", err)
	}

	for i, e := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{e.ID, e.Kind.String(), e.Name, e.SerialNumber, e.RegistrationDate,
			e.LastMaintenanceDate, e.DecommissionDate, e.Reason}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("report.WriteXLSX: row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(SheetName, "C", "C", 25)
	_ = f.SetColWidth(SheetName, "D", "G", 20)
	_ = f.SetColWidth(SheetName, "H", "H", 40)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report.WriteXLSX: %w", err)
	}
	return nil
}

// row flattens one record into CSV cells in Headers order.
func row(e domain.Equipment) []string {
	return []string{
		strconv.Itoa(e.ID),
		e.Kind.String(),
		e.Name,
		e.SerialNumber,
		e.RegistrationDate,
		e.LastMaintenanceDate,
		e.DecommissionDate,
		e.Reason,
	}
}
