// Package shuffle permutes the values of a ball set with repeated
// Fisher-Yates passes.
package shuffle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// BaseRounds is the minimum number of passes an initial shuffle makes.
	BaseRounds = 256

	// DefaultRoundDivisor scales the random part of the initial round count,
	// giving between 256 and 16639 passes.
	DefaultRoundDivisor = 4

	// DefaultReshuffleRounds is the fixed pass count between extractions.
	DefaultReshuffleRounds = 256

	// Random reshuffles make between minRandomReshuffle and
	// minRandomReshuffle+255 passes.
	minRandomReshuffle = 13
)

var ErrInvalidDivisor = errors.New("round divisor must be at least 1")

// Source supplies the randomness a shuffle consumes
type Source interface {
	// RandomIndex returns a uniform integer in [0, max). max must be > 0.
	RandomIndex(max int) int
	// Uint16 returns a random 16-bit value.
	Uint16() uint16
}

// Reseeder is implemented by sources that take fresh seed material at the
// start of every shuffle pass.
type Reseeder interface {
	BeginShuffle()
}

// Ring is the part of a ball set the shuffler needs.
type Ring interface {
	Len() int
	Swap(a, b int)
}

// Shuffler applies randomized permutations to a ring of balls
type Shuffler struct {
	src     Source
	divisor int
	log     zerolog.Logger
}

// New creates a Shuffler. divisor controls the initial round count.
func New(src Source, divisor int, log zerolog.Logger) (*Shuffler, error) {
	if divisor < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDivisor, divisor)
	}
	return &Shuffler{
		src:     src,
		divisor: divisor,
		log:     log,
	}, nil
}

// ShuffleRounds runs rounds full Fisher-Yates passes over the ring. Each pass
// walks positions n-1 down to 1 and swaps each with a uniformly chosen
// position in [0, i]. Zero rounds leaves the ring untouched.
func (s *Shuffler) ShuffleRounds(set Ring, rounds int) {
	if rounds <= 0 {
		return
	}
	if r, ok := s.src.(Reseeder); ok {
		r.BeginShuffle()
	}

	n := set.Len()
	for c := 0; c < rounds; c++ {
		for i := n - 1; i > 0; i-- {
			j := s.src.RandomIndex(i + 1)
			set.Swap(i, j)
		}
	}
}

// Shuffle mixes a freshly initialised ring using a randomized round count and
// returns the count used.
func (s *Shuffler) Shuffle(set Ring) int {
	rounds := BaseRounds + int(s.src.Uint16())/s.divisor
	s.ShuffleRounds(set, rounds)

	s.log.Debug().
		Int("set_length", set.Len()).
		Int("rounds", rounds).
		Msg("initial shuffle")

	return rounds
}

// Reshuffle mixes a ring between extractions. A positive fixed count is used
// as is; zero picks a random count between 13 and 268.
func (s *Shuffler) Reshuffle(set Ring, fixed int) int {
	rounds := fixed
	if rounds <= 0 {
		rounds = minRandomReshuffle + int(s.src.Uint16()>>8)
	}
	s.ShuffleRounds(set, rounds)
	return rounds
}
