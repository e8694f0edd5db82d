package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduledAt(t *testing.T) {
	b := &Booking{ID: "bk-1", Date: "2026-03-04", Time: "09:30"}

	at, err := b.ScheduledAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 4, 9, 30, 0, 0, time.Local), at)
}

func TestScheduledAtMalformed(t *testing.T) {
	b := &Booking{ID: "bk-1", Date: "soon", Time: "09:30"}

	_, err := b.ScheduledAt()
	assert.Error(t, err)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, IsActiveStatus(BookingStatusPending))
	assert.True(t, IsActiveStatus(BookingStatusConfirmed))
	assert.False(t, IsActiveStatus(BookingStatusCompleted))

	for _, status := range []string{BookingStatusCompleted, BookingStatusRejected, BookingStatusCanceled, BookingStatusNoShow} {
		assert.True(t, IsTerminalStatus(status), status)
		assert.False(t, IsActiveStatus(status), status)
	}
	assert.False(t, IsTerminalStatus(BookingStatusPending))
}
