package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID("507f1f77bcf86cd799439011"))

	for _, id := range []string{"", "123", "not-an-id", "507f1f77bcf86cd79943901z", "507f1f77bcf86cd7994390111"} {
		assert.Falsef(t, IsValidObjectID(id), "id %q should be invalid", id)
	}
}

func TestValidatorRequiredFields(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
	}

	v := NewValidator()
	assert.Error(t, v.Validate(&form{}))
	assert.NoError(t, v.Validate(&form{Name: "x"}))
}
