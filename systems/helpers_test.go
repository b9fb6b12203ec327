package systems

import (
	"io"
	"log"
	"testing"

	"github.com/automoto/starshot/config"
	"github.com/yohamta/donburi"
)

// constRand always draws the same value, clamped to the requested range.
type constRand int

func (r constRand) IntN(n int) int {
	if int(r) >= n {
		return n - 1
	}
	return int(r)
}

func newTestDirector(t *testing.T, rng Random, spawn *config.SpawnConfig) *Director {
	t.Helper()
	return NewDirector(donburi.NewWorld(), DirectorOptions{
		PlayArea: PlayArea{Width: 480, Height: 800},
		Rand:     rng,
		Logger:   log.New(io.Discard, "", 0),
		Spawn:    spawn,
	})
}
