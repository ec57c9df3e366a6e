package core

import "errors"

var (
	// ErrForbidden rejects an admin-only operation for a non-admin caller.
	ErrForbidden = errors.New("permission denied")

	// ErrEmployeeNotFound is returned when a caller identifier has no row in
	// EmployeeInfo.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidWorkbook marks an upload that cannot be read as an xlsx
	// workbook. Caller input, not a store failure.
	ErrInvalidWorkbook = errors.New("not a valid workbook")
)
