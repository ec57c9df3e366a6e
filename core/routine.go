package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"groundops.aero/groundops/utils"
)

// Routine is one flight-handling job. Date and time columns are nullable:
// a field that failed normalization is stored as absent, never as garbage.
// From and To are reserved words in MySQL; gorm quotes the tagged names.
type Routine struct {
	JobID         string     `gorm:"column:Job_ID;primaryKey"`
	TicketDate    *time.Time `gorm:"column:Ticket_Date;type:date"`
	SN            *string    `gorm:"column:SN"`
	Flight        *string    `gorm:"column:Flight"`
	From          *string    `gorm:"column:From"`
	To            *string    `gorm:"column:To"`
	STA           *string    `gorm:"column:STA"`
	ETA           *string    `gorm:"column:ETA"`
	ATA           *string    `gorm:"column:ATA"`
	Remarks       *string    `gorm:"column:Remarks"`
	StaffInCharge string     `gorm:"column:StaffInCharge"`
	Supervisor    *string    `gorm:"column:Supervisor"`
}

func (Routine) TableName() string { return "Routine" }

// RoutineInput carries the caller-supplied fields of a routine record, all as
// raw text. Date and times are normalized on conversion.
type RoutineInput struct {
	Date          string `json:"date"`
	SN            string `json:"sn"`
	Flight        string `json:"flight"`
	FromLoc       string `json:"fromLoc"`
	ToLoc         string `json:"toLoc"`
	STA           string `json:"sta"`
	ETA           string `json:"eta"`
	ATA           string `json:"ata"`
	Remarks       string `json:"remarks"`
	StaffInCharge string `json:"employeeID"`
	Supervisor    string `json:"supervisor"`
}

func textOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func dateOrNil(raw string) *time.Time {
	t, err := utils.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &t
}

func timeOrNil(raw string) *string {
	s, err := utils.ParseTime(raw)
	if err != nil {
		return nil
	}
	return &s
}

// routineFromInput builds a storable record under the permissive-insert
// policy: a date or time that fails to parse becomes null, the record itself
// survives.
func routineFromInput(jobID string, in RoutineInput) Routine {
	return Routine{
		JobID:         jobID,
		TicketDate:    dateOrNil(in.Date),
		SN:            textOrNil(in.SN),
		Flight:        textOrNil(in.Flight),
		From:          textOrNil(in.FromLoc),
		To:            textOrNil(in.ToLoc),
		STA:           timeOrNil(in.STA),
		ETA:           timeOrNil(in.ETA),
		ATA:           timeOrNil(in.ATA),
		Remarks:       textOrNil(in.Remarks),
		StaffInCharge: strings.TrimSpace(in.StaffInCharge),
		Supervisor:    textOrNil(in.Supervisor),
	}
}

// ListVisibleRoutines returns the records the caller may see, newest first.
// Admins see everything; everyone else only the jobs they are in charge of.
// An unknown caller falls back to the staff filter and gets an empty set.
func ListVisibleRoutines(db *gorm.DB, callerID string) ([]Routine, error) {
	role, err := ResolveRole(db, callerID)
	if err != nil {
		if !errors.Is(err, ErrEmployeeNotFound) {
			return nil, err
		}
		role = RoleStaff
	}

	q := db.Order("`Ticket_Date` DESC")
	if role != RoleAdmin {
		q = q.Where("`StaffInCharge` = ?", callerID)
	}

	var routines []Routine
	if err := q.Find(&routines).Error; err != nil {
		return nil, fmt.Errorf("list routines for %s: %w", callerID, err)
	}
	return routines, nil
}

// UpdateRoutine replaces every field of the record by job identifier. Any
// resolvable caller may update any job; the role is resolved but not
// otherwise restricted. Returns false when the identifier does not exist.
func UpdateRoutine(db *gorm.DB, jobID string, in RoutineInput, callerID string) (bool, error) {
	if _, err := ResolveRole(db, callerID); err != nil {
		return false, err
	}

	var existing Routine
	err := db.Where("`Job_ID` = ?", jobID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find routine %s: %w", jobID, err)
	}

	rec := routineFromInput(jobID, in)
	if err := db.Model(&Routine{}).Where("`Job_ID` = ?", jobID).Select("*").Updates(&rec).Error; err != nil {
		return false, fmt.Errorf("update routine %s: %w", jobID, err)
	}
	return true, nil
}

// DeleteRoutine removes a record by job identifier. Admin only.
func DeleteRoutine(db *gorm.DB, jobID string, callerID string) (bool, error) {
	role, err := ResolveRole(db, callerID)
	if err != nil {
		return false, err
	}
	if role != RoleAdmin {
		return false, fmt.Errorf("delete routine %s by %s: %w", jobID, callerID, ErrForbidden)
	}

	res := db.Where("`Job_ID` = ?", jobID).Delete(&Routine{})
	if res.Error != nil {
		return false, fmt.Errorf("delete routine %s: %w", jobID, res.Error)
	}
	return res.RowsAffected > 0, nil
}
