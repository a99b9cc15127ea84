package rbac_test

import (
	"testing"

	"go-payroll/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforcer_RoleHierarchy(t *testing.T) {
	e, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	cases := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"employee", "attendance", "checkin", true},
		{"employee", "payout", "read-own", true},
		{"employee", "payout", "generate", false},
		{"manager", "payout", "generate", true},
		{"manager", "attendance", "checkin", true}, // inherited from employee
		{"manager", "payout", "pay", false},
		{"admin", "payout", "generate", true}, // inherited from manager
		{"admin", "payout", "pay", true},
		{"admin", "attendance", "checkin", true},
		{"", "payout", "read", false},
	}

	for _, tc := range cases {
		allowed, err := e.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}
