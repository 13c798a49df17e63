package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow_RejectsZeroLength(t *testing.T) {
	_, err := NewTimeWindow(Monday, 9*60, 9*60)
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestNewTimeWindow_RejectsOutOfRange(t *testing.T) {
	_, err := NewTimeWindow(Monday, -1, 600)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewTimeWindow(Monday, 600, MinutesPerDay)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewTimeWindow(Weekday(7), 600, 700)
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestContains_NormalWindow(t *testing.T) {
	w, err := NewTimeWindow(Monday, 10*60, 12*60)
	require.NoError(t, err)

	assert.True(t, w.Contains(Monday, 10*60), "inicio incluido")
	assert.True(t, w.Contains(Monday, 11*60+59))
	assert.False(t, w.Contains(Monday, 12*60), "fin excluido")
	assert.False(t, w.Contains(Monday, 9*60+59))
	assert.False(t, w.Contains(Tuesday, 11*60))
}

func TestContains_WrapWindow(t *testing.T) {
	// lun 22:00 → mar 02:00
	w, err := NewTimeWindow(Monday, 22*60, 2*60)
	require.NoError(t, err)
	require.True(t, w.Wraps())

	assert.True(t, w.Contains(Monday, 22*60))
	assert.True(t, w.Contains(Monday, 23*60+59))
	assert.True(t, w.Contains(Tuesday, 0))
	assert.True(t, w.Contains(Tuesday, 1*60+59))
	assert.False(t, w.Contains(Tuesday, 2*60), "fin excluido en el día de derrame")
	assert.False(t, w.Contains(Monday, 21*60+59))
	assert.False(t, w.Contains(Monday, 2*60), "el tramo de madrugada no pertenece al día propio")
	assert.False(t, w.Contains(Wednesday, 1*60))
}

func TestContains_SundayWrapsIntoMonday(t *testing.T) {
	w, err := NewTimeWindow(Sunday, 23*60, 1*60)
	require.NoError(t, err)

	assert.True(t, w.Contains(Sunday, 23*60+30))
	assert.True(t, w.Contains(Monday, 0))
	assert.False(t, w.Contains(Monday, 1*60))
}

func TestNextBoundaryAfter(t *testing.T) {
	w, err := NewTimeWindow(Monday, 10*60, 12*60)
	require.NoError(t, err)

	day, min := w.NextBoundaryAfter(Monday, 9*60)
	assert.Equal(t, Monday, day)
	assert.Equal(t, 10*60, min)

	// estrictamente posterior: parado en el inicio, el próximo borde es el fin
	day, min = w.NextBoundaryAfter(Monday, 10*60)
	assert.Equal(t, Monday, day)
	assert.Equal(t, 12*60, min)

	// pasado el fin, el próximo borde es el inicio de la semana siguiente
	day, min = w.NextBoundaryAfter(Monday, 12*60)
	assert.Equal(t, Monday, day)
	assert.Equal(t, 10*60, min)

	day, min = w.NextBoundaryAfter(Saturday, 18*60)
	assert.Equal(t, Monday, day)
	assert.Equal(t, 10*60, min)
}

func TestNextBoundaryAfter_WrapWindow(t *testing.T) {
	w, err := NewTimeWindow(Monday, 22*60, 2*60)
	require.NoError(t, err)

	// domingo a la noche → el próximo borde es el inicio del lunes
	day, min := w.NextBoundaryAfter(Sunday, 23*60)
	assert.Equal(t, Monday, day)
	assert.Equal(t, 22*60, min)

	// dentro del tramo nocturno → el próximo borde es el fin, en el martes
	day, min = w.NextBoundaryAfter(Monday, 23*60)
	assert.Equal(t, Tuesday, day)
	assert.Equal(t, 2*60, min)
}

func TestMergeInto_OverlappingSameDay(t *testing.T) {
	a, _ := NewTimeWindow(Monday, 10*60, 12*60)
	b, _ := NewTimeWindow(Monday, 11*60, 13*60)

	out := MergeInto([]TimeWindow{a}, b)
	require.Len(t, out, 1)
	assert.Equal(t, 10*60, out[0].StartM)
	assert.Equal(t, 13*60, out[0].EndM)
}

func TestMergeInto_TouchingMerges(t *testing.T) {
	a, _ := NewTimeWindow(Monday, 10*60, 12*60)
	b, _ := NewTimeWindow(Monday, 12*60, 14*60)

	out := MergeInto([]TimeWindow{a}, b)
	require.Len(t, out, 1)
	assert.Equal(t, 10*60, out[0].StartM)
	assert.Equal(t, 14*60, out[0].EndM)
}

func TestMergeInto_DisjointAppends(t *testing.T) {
	a, _ := NewTimeWindow(Monday, 9*60, 10*60)
	b, _ := NewTimeWindow(Monday, 20*60, 22*60)

	out := MergeInto([]TimeWindow{a}, b)
	assert.Len(t, out, 2)
}

func TestMergeInto_WrapNotDuplicated(t *testing.T) {
	w, _ := NewTimeWindow(Monday, 22*60, 2*60)

	out := MergeInto([]TimeWindow{w}, w)
	assert.Len(t, out, 1)
}
