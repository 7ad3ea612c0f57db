package namegen

import "strings"

// runLimit returns how many times r may repeat in a row.
func runLimit(r rune) int {
	switch r {
	case 'a', 'h', 'i', 'j', 'q', 'u', 'v', 'w', 'x', 'y':
		return 1
	}
	return 2
}

// CollapseRuns removes repeated runes beyond their run limit: one for
// a, h, i, j, q, u, v, w, x and y, two for everything else. Concatenating
// independent pieces easily produces "aa" or "lll"; this is the cleanup
// applied once at the root of every compiled pattern.
//
//	CollapseRuns("aaa") == "a"
//	CollapseRuns("bbb") == "bb"
func CollapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var prev rune
	run := 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 0
		}
		if run < runLimit(r) {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
