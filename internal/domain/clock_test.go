package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Etc/GMT+5 es UTC-5 fijo, sin DST: los fixtures no dependen de la época del año.
const tzMinus5 = "Etc/GMT+5"

func TestValidateTZ(t *testing.T) {
	got, err := ValidateTZ("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", got)

	_, err = ValidateTZ("")
	assert.ErrorIs(t, err, ErrUnresolvedTimezone)

	_, err = ValidateTZ("Marte/Olympus")
	assert.ErrorIs(t, err, ErrUnresolvedTimezone)
}

func TestLocalAt(t *testing.T) {
	// 2025-01-14 es martes; 03:30Z en UTC-5 todavía es lunes 22:30 local.
	now := time.Date(2025, 1, 14, 3, 30, 0, 0, time.UTC)

	day, minute, err := LocalAt(now, tzMinus5)
	require.NoError(t, err)
	assert.Equal(t, Monday, day)
	assert.Equal(t, 22*60+30, minute)

	day, minute, err = LocalAt(now, "UTC")
	require.NoError(t, err)
	assert.Equal(t, Tuesday, day)
	assert.Equal(t, 3*60+30, minute)

	_, _, err = LocalAt(now, "")
	assert.ErrorIs(t, err, ErrUnresolvedTimezone)
}

func TestCanonicalAt_RoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 14, 3, 30, 0, 0, time.UTC)

	day, minute, err := LocalAt(now, tzMinus5)
	require.NoError(t, err)

	back, err := CanonicalAt(now, tzMinus5, day, minute)
	require.NoError(t, err)
	assert.True(t, back.Equal(now), "localAt∘canonicalAt debe volver al mismo instante")
}

func TestCanonicalAt_FutureSameWeek(t *testing.T) {
	now := time.Date(2025, 1, 14, 3, 30, 0, 0, time.UTC) // lun 22:30 local

	got, err := CanonicalAt(now, tzMinus5, Tuesday, 18*60)
	require.NoError(t, err)
	// mar 18:00 -05 = mar 23:00Z
	assert.Equal(t, time.Date(2025, 1, 14, 23, 0, 0, 0, time.UTC), got)
}

func TestCanonicalAt_PastRollsToNextWeek(t *testing.T) {
	now := time.Date(2025, 1, 14, 3, 30, 0, 0, time.UTC) // lun 22:30 local

	// lun 10:00 local ya pasó hoy → el del lunes siguiente
	got, err := CanonicalAt(now, tzMinus5, Monday, 10*60)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC), got)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:05", FormatMinutes(9*60+5))
	assert.Equal(t, "23:59", FormatMinutes(23*60+59))
}
