package core

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Employee struct {
	EmployeeID string `gorm:"column:Employee_ID;primaryKey"`
	EncryPw    string `gorm:"column:Encry_Pw"`
	Permission string `gorm:"column:Permission"`
}

func (Employee) TableName() string { return "EmployeeInfo" }

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleStaff Role = "Staff"
)

// RoleFromPermission maps the stored Permission column to a role. Only a
// case-insensitive match on "Admin" grants admin; any other value, including
// empty, is staff.
func RoleFromPermission(permission string) Role {
	if strings.EqualFold(permission, string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleStaff
}

// Authenticate matches the identifier and stored credential pair. The
// credential is opaque to this service; it is compared as-is.
func Authenticate(db *gorm.DB, employeeID, password string) (bool, error) {
	var count int64
	err := db.Model(&Employee{}).
		Where("`Employee_ID` = ? AND `Encry_Pw` = ?", employeeID, password).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("authenticate %s: %w", employeeID, err)
	}
	return count > 0, nil
}

// ResolveRole reads the caller's current permission from the store. There is
// no session object; every operation resolves the role fresh.
func ResolveRole(db *gorm.DB, employeeID string) (Role, error) {
	var emp Employee
	err := db.Select("`Permission`").Where("`Employee_ID` = ?", employeeID).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("resolve role for %s: %w", employeeID, ErrEmployeeNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("resolve role for %s: %w", employeeID, err)
	}
	return RoleFromPermission(emp.Permission), nil
}
