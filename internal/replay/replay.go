// Package replay replays PDN game files through the rules engine and
// reports how each game ended.
package replay

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/corentings/checkers"
	"github.com/corentings/checkers/image"
	"github.com/corentings/checkers/internal/config"
)

// Config holds configuration for the replay tool.
type Config struct {
	Files               []string
	SVGDir              string `env:"CHECKERS_SVG_DIR"`
	CapturedPiecesBlock bool   `env:"CHECKERS_CAPTURED_PIECES_BLOCK"`
	Strict              bool   `env:"CHECKERS_STRICT"`
}

// ParseConfig reads the environment and then CLI flags into a Config.
// Flags override environment values; the remaining arguments are the
// PDN files to replay.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.SVGDir, "svg-dir", cfg.SVGDir, "directory to write the final position of each game as SVG")
	fs.BoolVar(&cfg.CapturedPiecesBlock, "captured-pieces-block", cfg.CapturedPiecesBlock, "captured pieces block the rest of a capture chain")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail when a Result tag disagrees with the replayed outcome")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Files = fs.Args()
	if len(cfg.Files) == 0 {
		return Config{}, errors.New("at least one PDN file is required")
	}
	return cfg, nil
}

// Rules returns the engine rules selected by the config.
func (c Config) Rules() checkers.Rules {
	return checkers.Rules{CapturedPiecesBlock: c.CapturedPiecesBlock}
}

// Run replays every file in cfg and writes one summary line per game
// to out.  A file that fails does not stop the others; all failures
// are returned together.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if cfg.SVGDir != "" {
		if err := os.MkdirAll(cfg.SVGDir, 0o755); err != nil {
			return fmt.Errorf("create svg dir: %w", err)
		}
	}

	var errs []error
	for _, path := range cfg.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		game, err := replayFile(path, cfg.Rules())
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		fmt.Fprintf(out, "%s: %d moves, result %s (%s)\n", path, len(game.Moves()), game.Outcome(), game.Method())

		if cfg.Strict {
			if err := checkResult(game); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
			}
		}
		if cfg.SVGDir != "" {
			if err := writeSVG(cfg.SVGDir, path, game); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
			}
		}
	}
	return errors.Join(errs...)
}

func replayFile(path string, rules checkers.Rules) (*checkers.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return checkers.ParsePDN(f, rules)
}

// checkResult compares the Result tag with the replayed outcome.
func checkResult(game *checkers.Game) error {
	tag := strings.TrimSpace(game.GetTagPair("Result"))
	if tag == "" {
		return nil
	}
	recorded := normalizeResult(tag)
	if recorded != game.Outcome() {
		return fmt.Errorf("result tag %q disagrees with replayed outcome %s", tag, game.Outcome())
	}
	return nil
}

func normalizeResult(s string) checkers.Outcome {
	switch s {
	case "2-0", "1-0":
		return checkers.WhiteWon
	case "0-2", "0-1":
		return checkers.BlackWon
	case "1-1", "1/2-1/2":
		return checkers.Draw
	}
	return checkers.NoOutcome
}

func writeSVG(dir, path string, game *checkers.Game) error {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".svg"
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	var marks []checkers.Square
	if moves := game.Moves(); len(moves) > 0 {
		marks = moves[len(moves)-1].Path()
	}
	if err := image.SVG(f, game.Position().Board(), image.MarkSquares("#b9ca43", marks...), image.ShowNumbers()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
