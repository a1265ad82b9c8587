package draw

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MJE43/ball-draw-go/internal/games"
)

// Presentation selects how drawn balls are written.
type Presentation string

const (
	// PresentationPlain writes "Draw 5 from 1-50: 3 9 17 28 44".
	PresentationPlain Presentation = "plain"
	// PresentationStarred wraps the values in "*** ... ***".
	PresentationStarred Presentation = "starred"
)

// RunConfig describes one invocation of a game.
type RunConfig struct {
	Game   games.Game
	Draws  int
	Warmup int
}

// Summary reports what a run did.
type Summary struct {
	RunID    string
	Reported int
	WarmedUp int
}

// Runner drives the engine for every configured round and writes the
// reported draws to out.
type Runner struct {
	engine       *Engine
	out          io.Writer
	presentation Presentation
	log          zerolog.Logger
}

// NewRunner creates a new runner
func NewRunner(engine *Engine, out io.Writer, presentation Presentation, log zerolog.Logger) *Runner {
	if presentation == "" {
		presentation = PresentationPlain
	}
	return &Runner{
		engine:       engine,
		out:          out,
		presentation: presentation,
		log:          log,
	}
}

// Run performs cfg.Warmup unreported rounds followed by cfg.Draws reported
// ones. Each round draws the primary set, then the secondary set if the game
// has one. The first failure stops the run.
func (r *Runner) Run(cfg RunConfig) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	log := r.log.With().Str("run_id", sum.RunID).Str("game", cfg.Game.ID).Logger()

	log.Info().
		Int("draws", cfg.Draws).
		Int("warmup", cfg.Warmup).
		Str("presentation", string(r.presentation)).
		Msg("run started")

	total := max(cfg.Warmup, 0) + max(cfg.Draws, 0)
	for round := 0; round < total; round++ {
		report := round >= cfg.Warmup

		for _, set := range cfg.Game.Sets() {
			balls, err := r.engine.DrawBalls(set.Length, set.Balls)
			if err != nil {
				log.Error().Err(err).Int("round", round+1).Msg("draw failed")
				return sum, fmt.Errorf("round %d: %w", round+1, err)
			}
			if !report {
				continue
			}
			if _, err := io.WriteString(r.out, FormatLine(set, balls, r.presentation)); err != nil {
				return sum, fmt.Errorf("write draw: %w", err)
			}
		}

		if report {
			sum.Reported++
		} else {
			sum.WarmedUp++
		}
	}

	log.Info().Int("reported", sum.Reported).Int("warmed_up", sum.WarmedUp).Msg("run finished")
	return sum, nil
}

// FormatLine renders one drawn set, newline terminated
func FormatLine(set games.SetSpec, balls []int, p Presentation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Draw %d from 1-%d: ", set.Balls, set.Length)

	vals := make([]string, len(balls))
	for i, v := range balls {
		vals[i] = strconv.Itoa(v)
	}

	if p == PresentationStarred {
		b.WriteString("*** ")
		b.WriteString(strings.Join(vals, " "))
		b.WriteString(" ***")
	} else {
		b.WriteString(strings.Join(vals, " "))
	}
	b.WriteByte('\n')
	return b.String()
}
