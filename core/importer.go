package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Workbook column positions, matching the export layout minus JobID.
const (
	colDate = iota
	colSN
	colFlight
	colFrom
	colTo
	colSTA
	colETA
	colATA
	colRemarks
	colStaffInCharge
	colSupervisor
)

type ImportReport struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

func (r *ImportReport) Message() string {
	return fmt.Sprintf("Import finished. Success: %d, Failed: %d", r.Success, r.Failed)
}

// ImportRoutine inserts a single record with a fresh job identifier. Admin
// only. Malformed date or time fields are stored as null, the insert still
// happens.
func ImportRoutine(db *gorm.DB, in RoutineInput, callerID string) (string, error) {
	role, err := ResolveRole(db, callerID)
	if err != nil {
		return "", err
	}
	if role != RoleAdmin {
		return "", fmt.Errorf("import by %s: %w", callerID, ErrForbidden)
	}

	rec := routineFromInput(uuid.NewString(), in)
	if err := db.Create(&rec).Error; err != nil {
		return "", fmt.Errorf("insert routine: %w", err)
	}
	return rec.JobID, nil
}

// ImportWorkbook ingests every data row of the first sheet. Row 0 is the
// header and is skipped. Each row gets its own job identifier and commits
// independently: an insert failure is tallied and the scan continues. The
// report covers insert failures only; field-parse failures null the field
// per the permissive policy and do not count as a failed row.
func ImportWorkbook(db *gorm.DB, r io.Reader, callerID string, log *zap.Logger) (*ImportReport, error) {
	role, err := ResolveRole(db, callerID)
	if err != nil {
		return nil, err
	}
	if role != RoleAdmin {
		return nil, fmt.Errorf("bulk import by %s: %w", callerID, ErrForbidden)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrInvalidWorkbook)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %s: %v", ErrInvalidWorkbook, sheets[0], err)
	}

	report := &ImportReport{}
	for i := 1; i < len(rows); i++ {
		rec := routineFromRow(uuid.NewString(), rows[i])
		if err := db.Create(&rec).Error; err != nil {
			log.Warn("bulk import row failed",
				zap.Int("row", i+1),
				zap.String("jobId", rec.JobID),
				zap.Error(err))
			report.Failed++
			continue
		}
		report.Success++
	}

	log.Info("bulk import finished",
		zap.String("caller", callerID),
		zap.Int("success", report.Success),
		zap.Int("failed", report.Failed))
	return report, nil
}

// routineFromRow extracts the fixed-position cells of one workbook row. Short
// rows read as empty cells; excelize trims trailing empties.
func routineFromRow(jobID string, cells []string) Routine {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	return routineFromInput(jobID, RoutineInput{
		Date:          cell(colDate),
		SN:            cell(colSN),
		Flight:        cell(colFlight),
		FromLoc:       cell(colFrom),
		ToLoc:         cell(colTo),
		STA:           cell(colSTA),
		ETA:           cell(colETA),
		ATA:           cell(colATA),
		Remarks:       cell(colRemarks),
		StaffInCharge: cell(colStaffInCharge),
		Supervisor:    cell(colSupervisor),
	})
}
