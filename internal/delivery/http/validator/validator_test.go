package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" validate:"notblank"`
	Lat   float64 `json:"lat" validate:"gte=-90,lte=90"`
	Email string  `json:"email" validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "ok", Lat: 45}))

	err := v.Validate(&sample{Name: "   ", Lat: 91, Email: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")
	assert.Contains(t, err.Error(), "Lat must be <= 90")
	assert.Contains(t, err.Error(), "Email must be a valid email")
}
