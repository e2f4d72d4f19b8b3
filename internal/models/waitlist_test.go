package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitlistEntry_CloneDoesNotShareAmount(t *testing.T) {
	amount := "500-1000"
	original := &WaitlistEntry{ID: 1, Email: "a@b.co", Name: "An", MonthlyAmount: &amount}

	clone := original.Clone()
	*clone.MonthlyAmount = "over-2000"
	clone.Name = "Binh"

	assert.Equal(t, "500-1000", *original.MonthlyAmount)
	assert.Equal(t, "An", original.Name)
	assert.Nil(t, (*WaitlistEntry)(nil).Clone())
}
