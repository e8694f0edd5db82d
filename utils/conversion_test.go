package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-04")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, d.Weekday())

	_, err = ParseDate("04/03/2026")
	assert.Equal(t, KindValidation, ErrorKind(err))
	_, err = ParseDate("")
	assert.Equal(t, KindValidation, ErrorKind(err))
}

func TestParseClock(t *testing.T) {
	_, err := ParseClock("09:30")
	require.NoError(t, err)

	_, err = ParseClock("9:30am")
	assert.Equal(t, KindValidation, ErrorKind(err))
	_, err = ParseClock("25:00")
	assert.Equal(t, KindValidation, ErrorKind(err))
}

func TestCombineDateTime(t *testing.T) {
	at, err := CombineDateTime("2026-03-04", "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 4, 9, 30, 0, 0, time.Local), at)

	_, err = CombineDateTime("2026-03-04", "morning")
	assert.Equal(t, KindValidation, ErrorKind(err))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "monday", WeekdayName(time.Monday))
	assert.Equal(t, "sunday", WeekdayName(time.Sunday))
}
