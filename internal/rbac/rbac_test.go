package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnforcer_Policies(t *testing.T) {
	enforcer, err := NewEnforcer()
	assert.NoError(t, err)
	svc := NewService(enforcer)

	cases := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{RoleEmployee, "timeentry", "create", true},
		{RoleEmployee, "timeentry", "read", true},
		{RoleEmployee, "employee", "read", true},
		{RoleEmployee, "timeentry", "read_all", false},
		{RoleEmployee, "report", "read", false},
		{RoleEmployee, "presence", "read", false},

		{RoleManager, "timeentry", "create", true},
		{RoleManager, "timeentry", "read_all", true},
		{RoleManager, "report", "read", true},
		{RoleManager, "presence", "read", true},

		{RoleAdmin, "report", "read", true},
		{RoleAdmin, "timeentry", "create", true},

		{"", "timeentry", "create", false},
		{"intern", "timeentry", "create", false},
	}

	for _, tc := range cases {
		allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}
