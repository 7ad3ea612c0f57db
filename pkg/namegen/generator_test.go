package namegen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
)

func lits(values ...string) []*namegen.Generator {
	out := make([]*namegen.Generator, len(values))
	for i, v := range values {
		out[i] = namegen.Literal(v)
	}
	return out
}

func TestGenerator_Metrics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		gen          *namegen.Generator
		combinations int
		min          int
		max          int
	}{
		{"literal", namegen.Literal("abc"), 1, 3, 3},
		{"empty literal", namegen.Literal(""), 1, 0, 0},
		{"multibyte literal", namegen.Literal("ñandú"), 1, 5, 5},
		{"empty sequence", namegen.Sequence(), 1, 0, 0},
		{"empty choice", namegen.Choice(), 1, 0, 0},
		{"choice", namegen.Choice(lits("abc", "a")...), 2, 1, 3},
		{"choice with empty branch", namegen.Choice(lits("", "xyz")...), 2, 0, 3},
		{
			"sequence of choices",
			namegen.Sequence(namegen.Literal("a"), namegen.Choice(lits("b", "cc")...)),
			2, 2, 3,
		},
		{
			"nested choices add up",
			namegen.Choice(namegen.Choice(lits("a", "b", "c")...), namegen.Literal("dd")),
			4, 1, 2,
		},
		{"reverse", namegen.Reverse(namegen.Choice(lits("a", "bb")...)), 2, 1, 2},
		{"capitalize", namegen.Capitalize(namegen.Literal("abc")), 1, 3, 3},
		{"collapse", namegen.Collapse(namegen.Literal("aaa")), 1, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.combinations, tt.gen.Combinations())
			assert.Equal(t, tt.min, tt.gen.Min())
			assert.Equal(t, tt.max, tt.gen.Max())
			assert.LessOrEqual(t, tt.gen.Min(), tt.gen.Max())
		})
	}
}

func TestGenerator_CombinationsSaturate(t *testing.T) {
	t.Parallel()

	branches := make([]*namegen.Generator, 1024)
	for i := range branches {
		branches[i] = namegen.Literal("x")
	}
	wide := namegen.Choice(branches...)
	assert.Equal(t, 1024, wide.Combinations())

	huge := namegen.Sequence(wide, wide, wide, wide, wide, wide, wide)
	assert.Equal(t, math.MaxInt, huge.Combinations())

	assert.Equal(t, math.MaxInt, namegen.Choice(huge, huge).Combinations())
	assert.Equal(t, math.MaxInt, namegen.Reverse(huge).Combinations())
}

func TestGenerator_Sample(t *testing.T) {
	t.Parallel()

	t.Run("empty choice yields nothing", func(t *testing.T) {
		src := script()
		assert.Equal(t, "", namegen.Choice().SampleWith(src))
		assert.Empty(t, src.calls)
	})

	t.Run("nil source falls back to the default", func(t *testing.T) {
		g := namegen.MustCompile("(a|b)")
		for range 20 {
			assert.Contains(t, []string{"a", "b"}, g.SampleWith(nil))
		}
	})

	t.Run("sequence concatenates in order", func(t *testing.T) {
		g := namegen.Sequence(lits("a", "b", "c")...)
		assert.Equal(t, "abc", g.Sample())
	})

	t.Run("choice draws from source", func(t *testing.T) {
		g := namegen.Choice(lits("x", "y", "z")...)
		src := script(2)
		assert.Equal(t, "z", g.SampleWith(src))
		assert.Equal(t, []int{3}, src.calls)
	})

	t.Run("choice picks children uniformly", func(t *testing.T) {
		g := namegen.Choice(namegen.Literal("a"), namegen.Choice(lits("b", "c", "d", "e", "f")...))
		src := namegen.NewSeededSource(11)

		const n = 10000
		hits := 0
		for range n {
			if g.SampleWith(src) == "a" {
				hits++
			}
		}
		assert.InDelta(t, 0.5, float64(hits)/n, 0.05)
	})

	t.Run("collapse applies to the child sample", func(t *testing.T) {
		g := namegen.Collapse(namegen.Sequence(lits("aa", "a", "lll")...))
		assert.Equal(t, "all", g.Sample())
	})
}

func TestGenerator_Capitalize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":       "",
		"a":      "A",
		"hELLO":  "Hello",
		"élan":   "Élan",
		"o'NEIL": "O'neil",
		"123ab":  "123ab",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, namegen.Capitalize(namegen.Literal(in)).Sample())
		})
	}
}

func TestGenerator_Reverse(t *testing.T) {
	t.Parallel()

	t.Run("literal", func(t *testing.T) {
		assert.Equal(t, "cba", namegen.Reverse(namegen.Literal("abc")).Sample())
		assert.Equal(t, "údnañ", namegen.Reverse(namegen.Literal("ñandú")).Sample())
	})

	t.Run("double reverse restores the sample", func(t *testing.T) {
		inner := namegen.MustCompile(namegen.Greek, namegen.WithoutCollapse())
		twice := namegen.Reverse(namegen.Reverse(inner))
		for seed := range uint64(50) {
			assert.Equal(t,
				inner.SampleWith(namegen.NewSeededSource(seed)),
				twice.SampleWith(namegen.NewSeededSource(seed)),
			)
		}
	})
}

func TestGenerator_Accessors(t *testing.T) {
	t.Parallel()

	g := namegen.Sequence(lits("a", "b")...)
	assert.Equal(t, namegen.KindSequence, g.Kind())
	assert.Equal(t, "", g.Value())

	children := g.Children()
	assert.Len(t, children, 2)
	assert.Equal(t, "a", children[0].Value())

	children[0] = namegen.Literal("z")
	assert.Equal(t, "ab", g.Sample())

	assert.Equal(t, "seq", namegen.KindSequence.String())
	assert.Equal(t, "kind(42)", namegen.Kind(42).String())
}

func TestGenerator_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    string
	}{
		{"s(dim)", `collapse(seq(choice[115], "dim"))`},
		{"(foo|bar)", `collapse(choice("foo", "bar"))`},
		{"!~(ab)", `collapse(capitalize(reverse("ab")))`},
		{"<v|>", `collapse(choice(choice[6], ""))`},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, namegen.MustCompile(tt.pattern).String())
		})
	}
}
