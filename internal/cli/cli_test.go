package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fantasyname/internal/cli"
	"github.com/dmitrymomot/fantasyname/pkg/namegen"
	"github.com/dmitrymomot/fantasyname/pkg/randomname"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.New()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("pattern", func(t *testing.T) {
		out, err := run(t, "generate", "!(foo)", "-n", "3")
		require.NoError(t, err)
		assert.Equal(t, []string{"Foo", "Foo", "Foo"}, lines(out))
	})

	t.Run("default preset", func(t *testing.T) {
		out, err := run(t, "generate")
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z][a-z]+ [A-Z][a-z]+\n$`, out)
	})

	t.Run("seed repeats", func(t *testing.T) {
		first, err := run(t, "generate", "--preset", "greek", "-n", "5", "--seed", "7")
		require.NoError(t, err)
		second, err := run(t, "generate", "--preset", "greek", "-n", "5", "--seed", "7")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, lines(first), 5)
	})

	t.Run("slug", func(t *testing.T) {
		out, err := run(t, "generate", "!(ab) !(cd)", "--slug")
		require.NoError(t, err)
		assert.Equal(t, "ab-cd\n", out)
	})

	t.Run("no collapse", func(t *testing.T) {
		out, err := run(t, "generate", "(aaa)")
		require.NoError(t, err)
		assert.Equal(t, "a\n", out)

		out, err = run(t, "generate", "(aaa)", "--no-collapse")
		require.NoError(t, err)
		assert.Equal(t, "aaa\n", out)
	})

	t.Run("unique prints what it could", func(t *testing.T) {
		out, err := run(t, "generate", "(a|b)", "-n", "3", "--unique")
		require.ErrorIs(t, err, randomname.ErrExhausted)
		assert.ElementsMatch(t, []string{"a", "b"}, lines(out))
	})

	t.Run("errors", func(t *testing.T) {
		_, err := run(t, "generate", "s", "--preset", "greek")
		require.Error(t, err)

		_, err = run(t, "generate", "-n", "0")
		require.Error(t, err)

		_, err = run(t, "generate", "(a")
		require.ErrorIs(t, err, namegen.ErrMissingClosingBracket)

		_, err = run(t, "generate", "--preset", "klingon")
		require.Error(t, err)

		_, err = run(t, "generate", "<<a>>", "--max-depth", "1")
		require.ErrorIs(t, err, namegen.ErrNestingTooDeep)
	})
}

func TestGenerate_Library(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns:\n  tavern:\n    pattern: \"(The) !(boar)\"\n    description: Tavern names\n"), 0o600))

	out, err := run(t, "generate", "--library", path, "--preset", "tavern")
	require.NoError(t, err)
	assert.Equal(t, "The Boar\n", out)

	out, err = run(t, "presets", "--library", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Tavern names")

	_, err = run(t, "presets", "--library", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStats(t *testing.T) {
	t.Parallel()

	out, err := run(t, "stats", "(foo|ba)")
	require.NoError(t, err)
	assert.Equal(t, "combinations: 2\nmin length:   2\nmax length:   3\n", out)

	out, err = run(t, "stats", "greek")
	require.NoError(t, err)
	greek := namegen.MustCompile(namegen.Greek)
	assert.Contains(t, out, "combinations: "+strconv.Itoa(greek.Combinations()))

	_, err = run(t, "stats")
	require.Error(t, err)
}

func TestExplain(t *testing.T) {
	t.Parallel()

	out, err := run(t, "explain", "!(ab)|s", "--no-collapse")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"choice [116]",
		"  capitalize [1]",
		`    "ab"`,
		"  choice [115]",
		`    "ach" "ack" "ad" "age" "ald" "ale" "an" "ang" ... (107 more)`,
	}, lines(out))
}

func TestPresets(t *testing.T) {
	t.Parallel()

	out, err := run(t, "presets")
	require.NoError(t, err)
	rows := lines(out)
	assert.Len(t, rows, len(namegen.Presets())+1)
	assert.True(t, strings.HasPrefix(rows[0], "NAME"))
	assert.Contains(t, out, "middle-earth")
}
