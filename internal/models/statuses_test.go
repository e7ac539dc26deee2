package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to accepted", BookingStatusPending, BookingStatusAccepted, true},
		{"pending to rejected", BookingStatusPending, BookingStatusRejected, true},
		{"pending to in-progress", BookingStatusPending, BookingStatusInProgress, false},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"accepted to in-progress", BookingStatusAccepted, BookingStatusInProgress, true},
		{"accepted to completed", BookingStatusAccepted, BookingStatusCompleted, false},
		{"accepted to rejected", BookingStatusAccepted, BookingStatusRejected, false},
		{"accepted to pending", BookingStatusAccepted, BookingStatusPending, false},
		{"in-progress to completed", BookingStatusInProgress, BookingStatusCompleted, true},
		{"in-progress to accepted", BookingStatusInProgress, BookingStatusAccepted, false},
		{"rejected is terminal", BookingStatusRejected, BookingStatusAccepted, false},
		{"rejected cannot restart", BookingStatusRejected, BookingStatusPending, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusInProgress, false},
		{"self transition refused", BookingStatusPending, BookingStatusPending, false},
		{"unknown status refused", BookingStatus("cancelled"), BookingStatusAccepted, false},
		{"unknown target refused", BookingStatusPending, BookingStatus("cancelled"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsWorkerDecision(t *testing.T) {
	assert.True(t, IsWorkerDecision(BookingStatusAccepted))
	assert.True(t, IsWorkerDecision(BookingStatusRejected))

	assert.False(t, IsWorkerDecision(BookingStatusPending))
	assert.False(t, IsWorkerDecision(BookingStatusInProgress))
	assert.False(t, IsWorkerDecision(BookingStatusCompleted))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())

	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusAccepted.IsTerminal())
	assert.False(t, BookingStatusInProgress.IsTerminal())
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingStatusPending, BookingStatusAccepted, BookingStatusRejected,
		BookingStatusInProgress, BookingStatusCompleted,
	} {
		assert.True(t, ValidBookingStatus(s), string(s))
	}
	assert.False(t, ValidBookingStatus(BookingStatus("cancelled")))
	assert.False(t, ValidBookingStatus(BookingStatus("")))
}
