package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromPermission(t *testing.T) {
	tests := []struct {
		name       string
		permission string
		expected   Role
	}{
		{name: "Exact", permission: "Admin", expected: RoleAdmin},
		{name: "Lowercase", permission: "admin", expected: RoleAdmin},
		{name: "Uppercase", permission: "ADMIN", expected: RoleAdmin},
		{name: "Staff", permission: "Staff", expected: RoleStaff},
		{name: "Empty", permission: "", expected: RoleStaff},
		{name: "Unknown value", permission: "Supervisor", expected: RoleStaff},
		{name: "Admin with suffix", permission: "Administrator", expected: RoleStaff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoleFromPermission(tt.permission))
		})
	}
}
