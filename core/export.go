package core

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"groundops.aero/groundops/utils"
)

// ExportFilename is the download name for the rendered workbook.
const ExportFilename = "routine.xlsx"

var exportHeader = []string{
	"JobID", "Date", "SN", "Flight", "From", "To",
	"STA", "ETA", "ATA", "Remarks", "StaffInCharge", "Supervisor",
}

// cellText renders an optional cell. Absent values are written as the literal
// text "null" so exported files round-trip bit-compatibly with the legacy
// format.
func cellText(p *string) string {
	if p == nil {
		return "null"
	}
	return *p
}

func exportRow(rt Routine) []string {
	date := "null"
	if rt.TicketDate != nil {
		date = rt.TicketDate.Format(utils.DateLayout)
	}
	return []string{
		rt.JobID,
		date,
		cellText(rt.SN),
		cellText(rt.Flight),
		cellText(rt.From),
		cellText(rt.To),
		cellText(rt.STA),
		cellText(rt.ETA),
		cellText(rt.ATA),
		cellText(rt.Remarks),
		rt.StaffInCharge,
		cellText(rt.Supervisor),
	}
}

func buildWorkbook(routines []Routine) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	widths := make([]int, len(exportHeader))
	for i, h := range exportHeader {
		widths[i] = len(h)
	}

	header := exportHeader
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, rt := range routines {
		row := exportRow(rt)
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			return nil, err
		}
	}

	for j, w := range widths {
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, float64(w)+2); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ExportVisible renders the caller-visible record set as an xlsx byte stream:
// one header row plus one row per record, columns sized to content.
func ExportVisible(db *gorm.DB, callerID string) ([]byte, error) {
	routines, err := ListVisibleRoutines(db, callerID)
	if err != nil {
		return nil, err
	}

	f, err := buildWorkbook(routines)
	if err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}
	return buf.Bytes(), nil
}
