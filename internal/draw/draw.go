// Package draw extracts balls from shuffled ball sets and runs configured
// rounds of a game.
package draw

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/MJE43/ball-draw-go/internal/ballset"
	"github.com/MJE43/ball-draw-go/internal/shuffle"
)

var (
	ErrInvalidDraw = errors.New("invalid draw request")
	ErrDrawFailed  = errors.New("draw failed")
)

// Options configures an Engine.
type Options struct {
	// RoundDivisor scales the random part of the initial shuffle.
	RoundDivisor int
	// ReshuffleRounds is the pass count between extractions. Zero picks a
	// small random count for every reshuffle.
	ReshuffleRounds int
	Logger          zerolog.Logger
}

// Engine draws distinct balls from freshly shuffled sets
type Engine struct {
	shuffler        *shuffle.Shuffler
	reshuffleRounds int
	log             zerolog.Logger
}

// NewEngine creates an Engine that takes all its randomness from src
func NewEngine(src shuffle.Source, opts Options) (*Engine, error) {
	if opts.ReshuffleRounds < 0 {
		return nil, fmt.Errorf("reshuffle rounds must not be negative, got %d", opts.ReshuffleRounds)
	}
	sh, err := shuffle.New(src, opts.RoundDivisor, opts.Logger)
	if err != nil {
		return nil, err
	}
	return &Engine{
		shuffler:        sh,
		reshuffleRounds: opts.ReshuffleRounds,
		log:             opts.Logger,
	}, nil
}

// DrawBalls draws numBalls distinct values from 1..setLength and returns them
// in ascending order.
//
// The set is shuffled once, then each ball is taken from a third of the way
// into whatever remains, with a reshuffle before the next extraction.
func (e *Engine) DrawBalls(setLength, numBalls int) ([]int, error) {
	if numBalls < 1 || setLength < numBalls {
		return nil, fmt.Errorf("%w: draw %d from 1-%d", ErrInvalidDraw, numBalls, setLength)
	}

	set, err := ballset.New(setLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDrawFailed, err)
	}
	e.shuffler.Shuffle(set)

	balls := make([]int, 0, numBalls)
	for i := 0; i < numBalls; i++ {
		pivot := set.Len() / 3

		v, err := set.RemoveAt(pivot)
		if err != nil {
			return nil, fmt.Errorf("%w: extraction %d: %w", ErrDrawFailed, i+1, err)
		}
		balls = append(balls, v)

		if i < numBalls-1 {
			rounds := e.shuffler.Reshuffle(set, e.reshuffleRounds)
			e.log.Debug().
				Int("extraction", i+1).
				Int("pivot", pivot).
				Int("remaining", set.Len()).
				Int("reshuffle_rounds", rounds).
				Msg("ball extracted")
		}
	}

	slices.Sort(balls)
	return balls, nil
}
