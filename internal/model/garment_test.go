package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGarmentStatus_Valid(t *testing.T) {
	for _, s := range []GarmentStatus{StatusClean, StatusDirty, StatusWorn2x, StatusNeedsWashing} {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, GarmentStatus("").Valid())
	assert.False(t, GarmentStatus("SOGGY").Valid())
	assert.False(t, GarmentStatus("clean").Valid())
}

func TestGarmentStatus_NextWear(t *testing.T) {
	cases := []struct {
		from GarmentStatus
		to   GarmentStatus
	}{
		{StatusClean, StatusWorn2x},
		{StatusWorn2x, StatusDirty},
		{StatusDirty, StatusNeedsWashing},
		{StatusNeedsWashing, StatusNeedsWashing},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.to, tc.from.NextWear(), "from %s", tc.from)
	}
}
