package namegen_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
)

func TestPresets_Compile(t *testing.T) {
	t.Parallel()

	for _, p := range namegen.Presets() {
		t.Run(p.Name, func(t *testing.T) {
			g, err := namegen.Compile(p.Pattern)
			require.NoError(t, err)
			assert.NotEmpty(t, p.Description)
			assert.GreaterOrEqual(t, g.Combinations(), 1)
			assert.Positive(t, g.Max())
			assert.LessOrEqual(t, g.Min(), g.Max())

			src := namegen.NewSeededSource(1)
			for range 50 {
				name := g.SampleWith(src)
				assert.NotEmpty(t, name)
				assert.LessOrEqual(t, len([]rune(name)), g.Max())
			}
		})
	}
}

func TestPresets_NamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, p := range namegen.Presets() {
		assert.False(t, seen[p.Name], "duplicate preset %q", p.Name)
		seen[p.Name] = true
		assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, p.Name)
	}
}

func TestPresets_ReturnsCopy(t *testing.T) {
	t.Parallel()

	list := namegen.Presets()
	require.NotEmpty(t, list)
	list[0].Pattern = "changed"

	assert.NotEqual(t, "changed", namegen.Presets()[0].Pattern)
}

func TestLookupPreset(t *testing.T) {
	t.Parallel()

	p, ok := namegen.LookupPreset("middle-earth")
	require.True(t, ok)
	assert.Equal(t, namegen.MiddleEarth, p.Pattern)

	_, ok = namegen.LookupPreset("narnia")
	assert.False(t, ok)
}

func TestPresets_FullNames(t *testing.T) {
	t.Parallel()

	full := regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
	for _, pattern := range []string{namegen.WholeName, namegen.MaleName, namegen.FemaleName} {
		g := namegen.MustCompile(pattern)
		for range 100 {
			name := g.Sample()
			assert.Regexp(t, full, name)
		}
	}
}
