package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGameName(t *testing.T) {
	assert.Equal(t, "rocketleague", NormalizeGameName("Rocket League"))
	assert.Equal(t, "rocketleague", NormalizeGameName("  rocket   LEAGUE "))
	assert.Equal(t, "cs2", NormalizeGameName("CS2"))
	assert.Equal(t, "", NormalizeGameName("   "))
}

func TestCommonGames(t *testing.T) {
	a := []string{"Chess", "Go"}
	b := []string{"go", "Poker"}

	assert.Equal(t, []string{"Go"}, CommonGames(a, b))
	// simétrico salvo el display name, que sale del primer catálogo
	assert.Equal(t, []string{"go"}, CommonGames(b, a))
}

func TestCommonGames_Disjoint(t *testing.T) {
	assert.Empty(t, CommonGames([]string{"Chess"}, []string{"Poker"}))
	assert.Empty(t, CommonGames(nil, []string{"Poker"}))
}

func TestCommonGames_DedupAndOrder(t *testing.T) {
	a := []string{"Rocket League", "rocket league", "Apex Legends"}
	b := []string{"apexlegends", "rocketleague"}

	got := CommonGames(a, b)
	assert.Equal(t, []string{"Apex Legends", "Rocket League"}, got)
}
