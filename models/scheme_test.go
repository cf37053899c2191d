package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, category := range SchemeCategories {
		assert.True(t, IsValidCategory(category), "category %q should be valid", category)
	}

	invalid := []string{"", "subsidy", "SUBSIDY", "Fertilizer", "Organic  Farming", "All"}
	for _, v := range invalid {
		assert.False(t, IsValidCategory(v), "category %q should be rejected", v)
	}
}

func TestIsValidState(t *testing.T) {
	for _, state := range SchemeStates {
		assert.True(t, IsValidState(state), "state %q should be valid", state)
	}
	assert.Contains(t, SchemeStates, StateAllIndia)

	invalid := []string{"", "all india", "Bombay", "Punjab ", "All"}
	for _, v := range invalid {
		assert.False(t, IsValidState(v), "state %q should be rejected", v)
	}
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleSuperAdmin))

	invalid := []string{"", "Admin", "SUPERADMIN", "root", "moderator"}
	for _, v := range invalid {
		assert.False(t, IsValidRole(v), "role %q should be rejected", v)
	}
}
