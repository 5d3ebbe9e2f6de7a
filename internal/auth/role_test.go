package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleOrdering(t *testing.T) {
	ordered := []Role{RoleGuest, RoleStaff, RoleReceptionist, RoleAdmin, RoleSuperAdmin}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(),
			"%s must outrank %s", ordered[i], ordered[i-1])
	}
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleReceptionist))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.False(t, RoleStaff.AtLeast(RoleAdmin))
	assert.False(t, RoleGuest.AtLeast(RoleStaff))
	assert.True(t, RoleSuperAdmin.AtLeast(RoleGuest))

	assert.False(t, Role("bogus").AtLeast(RoleGuest), "unknown roles rank below everything")
}

func TestRoleIsStaff(t *testing.T) {
	assert.False(t, RoleGuest.IsStaff())
	assert.True(t, RoleStaff.IsStaff())
	assert.True(t, RoleReceptionist.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleSuperAdmin.IsStaff())
}

func TestParseRole(t *testing.T) {
	for _, name := range []string{"guest", "staff", "receptionist", "admin", "superadmin"} {
		r, err := ParseRole(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.String())
	}

	_, err := ParseRole("manager")
	assert.Error(t, err)
}
