package domain

import (
	"sort"
	"strings"
)

// NormalizeGameName baja a minúsculas y elimina todo espacio en blanco.
// "Rocket League" y "rocketleague" son el mismo juego.
func NormalizeGameName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// CommonGames devuelve la intersección de dos catálogos, con los nombres de
// display del lado A. Orden determinístico por título normalizado, así el
// render es estable y la operación simétrica salvo por el display name.
func CommonGames(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, g := range b {
		inB[NormalizeGameName(g)] = struct{}{}
	}

	var common []string
	seen := make(map[string]struct{})
	for _, g := range a {
		n := NormalizeGameName(g)
		if _, ok := inB[n]; !ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		common = append(common, g)
	}

	sort.Slice(common, func(i, j int) bool {
		return NormalizeGameName(common[i]) < NormalizeGameName(common[j])
	})
	return common
}
