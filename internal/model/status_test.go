package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), "status %s should be valid", s)
	}

	assert.False(t, Status("").Valid())
	assert.False(t, Status("new").Valid())
	assert.False(t, Status("Archived").Valid())
}

func TestAllStatusesComplete(t *testing.T) {
	assert.Len(t, AllStatuses, 7)
	assert.Equal(t, StatusNew, AllStatuses[0])
}

func TestStatusCard_EveryStatusHasStyle(t *testing.T) {
	for _, s := range AllStatuses {
		style, ok := s.Card()
		assert.True(t, ok, "status %s missing card style", s)
		assert.NotEmpty(t, style.Color)
		assert.NotEmpty(t, style.Icon)
	}
}

func TestStatusCard_UnknownStatus(t *testing.T) {
	_, ok := Status("Archived").Card()
	assert.False(t, ok)
}
