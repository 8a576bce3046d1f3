package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusAwaitingConfirmation, StatusInProduction, true},
		{StatusAwaitingConfirmation, StatusCancelled, true},
		{StatusAwaitingConfirmation, StatusCompleted, false},
		{StatusInProduction, StatusCompleted, true},
		{StatusInProduction, StatusCancelled, true},
		{StatusInProduction, StatusAwaitingConfirmation, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusInProduction, false},
		{StatusCancelled, StatusInProduction, false},
		{"bogus", StatusInProduction, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestSuccessful(t *testing.T) {
	order := WorkOrder{Count: 10, Defective: 3}
	assert.Equal(t, 7, order.Successful())

	clean := WorkOrder{Count: 5}
	assert.Equal(t, 5, clean.Successful())
}
