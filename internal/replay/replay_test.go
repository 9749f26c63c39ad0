package replay

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corentings/checkers"
)

func writeGame(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestParseConfigRequiresFiles(t *testing.T) {
	_, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDN file")
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("CHECKERS_SVG_DIR", "/tmp/boards")
	t.Setenv("CHECKERS_CAPTURED_PIECES_BLOCK", "true")

	cfg, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-strict", "a.pdn", "b.pdn"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/boards", cfg.SVGDir)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"a.pdn", "b.pdn"}, cfg.Files)
	assert.Equal(t, checkers.Rules{CapturedPiecesBlock: true}, cfg.Rules())

	cfg, err = ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-captured-pieces-block=false", "-svg-dir", "out", "a.pdn"})
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.SVGDir)
	assert.Equal(t, checkers.StandardRules, cfg.Rules())
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("CHECKERS_STRICT", "maybe")
	_, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"a.pdn"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	sample := writeGame(t, dir, "sample.pdn", "[Event \"Club\"]\n1. 22-18 11-15 2. 18x11 8x15 *\n")
	ending := writeGame(t, dir, "ending.pdn", "[FEN \"W:W18:B15\"]\n[Result \"2-0\"]\n1. 18x11 2-0\n")
	svgDir := filepath.Join(dir, "svg")

	var out bytes.Buffer
	err := Run(context.Background(), Config{Files: []string{sample, ending}, SVGDir: svgDir, Strict: true}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, sample+": 4 moves, result * (NoMethod)", lines[0])
	assert.Equal(t, ending+": 1 moves, result 2-0 (Elimination)", lines[1])

	for _, name := range []string{"sample.svg", "ending.svg"} {
		data, err := os.ReadFile(filepath.Join(svgDir, name))
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
		assert.Contains(t, string(data), "#b9ca43")
	}
}

func TestRunCollectsFailures(t *testing.T) {
	dir := t.TempDir()
	illegal := writeGame(t, dir, "illegal.pdn", "1. 22-19 *")
	mismatch := writeGame(t, dir, "mismatch.pdn", "[Result \"0-2\"]\n1. 22-18 *")
	good := writeGame(t, dir, "good.pdn", "1. 22-18 *")

	var out bytes.Buffer
	cfg := Config{Files: []string{illegal, filepath.Join(dir, "missing.pdn"), mismatch, good}, Strict: true}
	err := Run(context.Background(), cfg, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, checkers.ErrIllegalMove)
	assert.Contains(t, err.Error(), "missing.pdn")
	assert.Contains(t, err.Error(), "disagrees")

	assert.Contains(t, out.String(), good+": 1 moves")
	assert.Contains(t, out.String(), mismatch+": 1 moves")

	cfg.Strict = false
	cfg.Files = []string{mismatch}
	require.NoError(t, Run(context.Background(), cfg, nil))
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	good := writeGame(t, dir, "good.pdn", "1. 22-18 *")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Config{Files: []string{good}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeResult(t *testing.T) {
	assert.Equal(t, checkers.WhiteWon, normalizeResult("1-0"))
	assert.Equal(t, checkers.BlackWon, normalizeResult("0-2"))
	assert.Equal(t, checkers.Draw, normalizeResult("1/2-1/2"))
	assert.Equal(t, checkers.NoOutcome, normalizeResult("?"))
}
