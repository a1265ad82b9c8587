// Package cli decodes command line arguments into a draw configuration.
package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MJE43/ball-draw-go/internal/games"
)

var (
	ErrUnknownOption = errors.New("invalid option")
	ErrUnknownGame   = errors.New("invalid game type")
	ErrNoGame        = errors.New("no game selected, use --game")
)

const (
	flagHelp   = "--help"
	flagGame   = "--game="
	flagDraws  = "--draws="
	flagWarmup = "--warmup="
	flagStars  = "--stars"
)

// Options is the decoded command line
type Options struct {
	Help    bool
	Game    games.Game
	Draws   int
	Warmup  int
	Starred bool
}

// Parse decodes args, which must not include the program name. An empty
// argument list and any --help both ask for usage; the first --help seen
// stops parsing. Arguments that do not start with '-' are ignored.
func Parse(args []string) (Options, error) {
	opts := Options{Draws: 1}
	if len(args) == 0 {
		opts.Help = true
		return opts, nil
	}

	gameSet := false
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		switch {
		case strings.HasPrefix(arg, flagHelp):
			opts.Help = true
			return opts, nil

		case strings.HasPrefix(arg, flagGame):
			id := strings.TrimPrefix(arg, flagGame)
			g, err := games.GetGame(id)
			if err != nil {
				return opts, fmt.Errorf("%w '%s'", ErrUnknownGame, id)
			}
			opts.Game = g
			gameSet = true

		case strings.HasPrefix(arg, flagDraws):
			opts.Draws = atoi(strings.TrimPrefix(arg, flagDraws))

		case strings.HasPrefix(arg, flagWarmup):
			opts.Warmup = atoi(strings.TrimPrefix(arg, flagWarmup))

		case arg == flagStars:
			opts.Starred = true

		default:
			return opts, fmt.Errorf("%w %s", ErrUnknownOption, arg)
		}
	}

	if !gameSet {
		return opts, ErrNoGame
	}
	return opts, nil
}

// atoi reads an optionally signed run of leading digits and ignores the
// rest. Input without leading digits reads as 0.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	const limit = 1 << 31
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n >= limit {
			n = limit
			break
		}
	}

	if neg {
		return -n
	}
	if n == limit {
		n--
	}
	return n
}

// Usage returns the help text for the program invoked as argv0
func Usage(argv0 string) string {
	prog := filepath.Base(argv0)

	var b strings.Builder
	fmt.Fprintf(&b, "Using %s:\n", prog)
	fmt.Fprintf(&b, "    %s --help (show this help)\n", prog)
	fmt.Fprintf(&b, "    %s [options]\n", prog)
	fmt.Fprintf(&b, "    options: --game=[game] where game in (%s)\n", quoteList(games.ListGames()))
	b.WriteString("             --draws=[num draws]\n")
	b.WriteString("             --warmup=[num unreported draws]\n")
	b.WriteString("             --stars (wrap drawn values in *** ***)\n\n")
	return b.String()
}

func quoteList(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = "'" + id + "'"
	}
	return strings.Join(quoted, ", ")
}
