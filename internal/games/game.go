// Package games defines the lottery games a draw can be run for.
package games

import (
	"errors"
	"fmt"
	"sort"
)

var ErrGameNotFound = errors.New("game not found")

// SetSpec describes one ball set of a game: how many balls are in the machine
// and how many are drawn from it.
type SetSpec struct {
	Length int `json:"length"`
	Balls  int `json:"balls"`
}

// IsZero reports whether the set is absent from the game
func (s SetSpec) IsZero() bool {
	return s.Length == 0 && s.Balls == 0
}

// Validate checks that 1 <= Balls <= Length
func (s SetSpec) Validate() error {
	if s.Balls < 1 || s.Length < s.Balls {
		return fmt.Errorf("invalid set: draw %d from 1-%d", s.Balls, s.Length)
	}
	return nil
}

// Game is an immutable game configuration. Secondary is zero for games with a
// single set.
type Game struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Primary   SetSpec `json:"primary"`
	Secondary SetSpec `json:"secondary"`
}

// HasSecondary reports whether the game draws a second set
func (g Game) HasSecondary() bool {
	return !g.Secondary.IsZero()
}

// Sets returns the sets to draw, primary first
func (g Game) Sets() []SetSpec {
	if g.HasSecondary() {
		return []SetSpec{g.Primary, g.Secondary}
	}
	return []SetSpec{g.Primary}
}

// registry holds all available games. It is filled once in init and only read
// afterwards.
var registry = make(map[string]Game)

func register(g Game) {
	registry[g.ID] = g
}

// GetGame retrieves a game by ID
func GetGame(id string) (Game, error) {
	g, ok := registry[id]
	if !ok {
		return Game{}, fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	return g, nil
}

// ListGames returns all registered game IDs in sorted order
func ListGames() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func init() {
	register(Game{
		ID:        "eur",
		Name:      "EuroMillions",
		Primary:   SetSpec{Length: 50, Balls: 5},
		Secondary: SetSpec{Length: 12, Balls: 2},
	})
	register(Game{
		ID:      "lot",
		Name:    "Lotto",
		Primary: SetSpec{Length: 59, Balls: 6},
	})
	register(Game{
		ID:        "sfl",
		Name:      "Set For Life",
		Primary:   SetSpec{Length: 47, Balls: 5},
		Secondary: SetSpec{Length: 10, Balls: 1},
	})
}
