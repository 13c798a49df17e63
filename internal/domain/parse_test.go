package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHHMM(t *testing.T) {
	m, err := ParseHHMM("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	m, err = ParseHHMM(" 23:59 ")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, m)

	for _, bad := range []string{"", "930", "24:00", "12:60", "aa:bb", "12:30:00"} {
		_, err := ParseHHMM(bad)
		assert.Error(t, err, "debería rechazar %q", bad)
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("mon")
	require.NoError(t, err)
	assert.Equal(t, Monday, d)

	d, err = ParseDay(" SUN ")
	require.NoError(t, err)
	assert.Equal(t, Sunday, d)

	_, err = ParseDay("lunes")
	assert.Error(t, err)
}
