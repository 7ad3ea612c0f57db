package namegen_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
)

func TestCollapseRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"aaa", "a"},
		{"bbb", "bb"},
		{"bb", "bb"},
		{"aabbbcccc", "abbcc"},
		{"lllyyy", "lly"},
		{"hhiijjqquuvvwwxxyy", "hijquvwxy"},
		{"ababab", "ababab"},
		{"eee'''", "ee''"},
		{"AAA", "AA"},
		{"ñññ", "ññ"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, namegen.CollapseRuns(tt.in))
		})
	}
}

func TestCollapseRuns_Properties(t *testing.T) {
	t.Parallel()

	const alphabet = "aabbhhllxyzz'"
	rnd := rand.New(rand.NewPCG(21, 42))

	for range 500 {
		var b strings.Builder
		for range rnd.IntN(30) {
			b.WriteByte(alphabet[rnd.IntN(len(alphabet))])
		}
		in := b.String()
		out := namegen.CollapseRuns(in)

		assert.True(t, isSubsequence(out, in), "%q is not a subsequence of %q", out, in)
		assert.Equal(t, out, namegen.CollapseRuns(out), "collapsing %q again changed it", out)
		assertRunsBounded(t, out)
	}
}

func isSubsequence(sub, s string) bool {
	rs := []rune(s)
	i := 0
	for _, r := range sub {
		for i < len(rs) && rs[i] != r {
			i++
		}
		if i == len(rs) {
			return false
		}
		i++
	}
	return true
}

func assertRunsBounded(t *testing.T, s string) {
	t.Helper()

	var prev rune
	run := 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		limit := 2
		if strings.ContainsRune("ahijquvwxy", r) {
			limit = 1
		}
		assert.LessOrEqual(t, run, limit, "run of %q in %q", r, s)
		prev = r
	}
}
