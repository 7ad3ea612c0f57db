package namegen

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies the variant of a Generator node.
type Kind uint8

// Node kinds. The set is closed: every operation switches over all of them.
const (
	KindLiteral Kind = iota
	KindSequence
	KindChoice
	KindReverse
	KindCapitalize
	KindCollapse
)

var kindNames = [...]string{
	KindLiteral:    "literal",
	KindSequence:   "seq",
	KindChoice:     "choice",
	KindReverse:    "reverse",
	KindCapitalize: "capitalize",
	KindCollapse:   "collapse",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Generator is a node of a compiled pattern tree. A tree never changes after
// it is built, so a single tree may be sampled from many goroutines as long
// as the randomness source allows it.
type Generator struct {
	kind     Kind
	value    string
	children []*Generator
	source   Source
}

// Literal returns a node that always produces s.
func Literal(s string) *Generator {
	return &Generator{kind: KindLiteral, value: s}
}

// Sequence returns a node that concatenates the samples of its children in order.
func Sequence(children ...*Generator) *Generator {
	return &Generator{kind: KindSequence, children: children}
}

// Choice returns a node that samples exactly one of its children, picked
// uniformly by index. The pick ignores how many combinations each child can
// produce, so the output distribution is not uniform over all expansions.
func Choice(children ...*Generator) *Generator {
	return &Generator{kind: KindChoice, children: children}
}

// Reverse returns a node that reverses the runes of the child's sample.
func Reverse(child *Generator) *Generator {
	return &Generator{kind: KindReverse, children: []*Generator{child}}
}

// Capitalize returns a node that upper-cases the first rune of the child's
// sample and lower-cases the rest.
func Capitalize(child *Generator) *Generator {
	return &Generator{kind: KindCapitalize, children: []*Generator{child}}
}

// Collapse returns a node that trims runs of repeated runes in the child's
// sample, see CollapseRuns.
func Collapse(child *Generator) *Generator {
	return &Generator{kind: KindCollapse, children: []*Generator{child}}
}

// Kind reports the node variant.
func (g *Generator) Kind() Kind { return g.kind }

// Value returns the text of a literal node and "" for every other kind.
func (g *Generator) Value() string { return g.value }

// Children returns a copy of the direct children of the node.
func (g *Generator) Children() []*Generator {
	out := make([]*Generator, len(g.children))
	copy(out, g.children)
	return out
}

// Sample produces one random string using the source bound at compile time,
// or the default source for hand-built trees.
func (g *Generator) Sample() string {
	src := g.source
	if src == nil {
		src = DefaultSource()
	}
	return g.SampleWith(src)
}

// SampleWith produces one random string drawing every choice from src. A nil
// src uses DefaultSource.
func (g *Generator) SampleWith(src Source) string {
	if src == nil {
		src = DefaultSource()
	}
	var b strings.Builder
	g.sample(&b, src)
	return b.String()
}

func (g *Generator) sample(b *strings.Builder, src Source) {
	switch g.kind {
	case KindLiteral:
		b.WriteString(g.value)
	case KindSequence:
		for _, c := range g.children {
			c.sample(b, src)
		}
	case KindChoice:
		if len(g.children) == 0 {
			return
		}
		g.children[src.IntN(len(g.children))].sample(b, src)
	case KindReverse:
		b.WriteString(reverse(g.children[0].SampleWith(src)))
	case KindCapitalize:
		b.WriteString(capitalize(g.children[0].SampleWith(src)))
	case KindCollapse:
		b.WriteString(CollapseRuns(g.children[0].SampleWith(src)))
	}
}

// Combinations reports how many distinct expansions the tree describes,
// counting each branch once. It saturates at math.MaxInt. The figure is
// descriptive only; it does not weight the random choices.
func (g *Generator) Combinations() int {
	switch g.kind {
	case KindSequence:
		total := 1
		for _, c := range g.children {
			total = mulSat(total, c.Combinations())
		}
		return total
	case KindChoice:
		total := 0
		for _, c := range g.children {
			total = addSat(total, c.Combinations())
		}
		if total == 0 {
			return 1
		}
		return total
	case KindReverse, KindCapitalize, KindCollapse:
		return g.children[0].Combinations()
	default:
		return 1
	}
}

// Min reports the shortest possible sample length in runes. Collapsing is
// not taken into account, so the bound can be larger than a real sample.
func (g *Generator) Min() int {
	switch g.kind {
	case KindLiteral:
		return utf8.RuneCountInString(g.value)
	case KindSequence:
		n := 0
		for _, c := range g.children {
			n += c.Min()
		}
		return n
	case KindChoice:
		if len(g.children) == 0 {
			return 0
		}
		n := g.children[0].Min()
		for _, c := range g.children[1:] {
			n = min(n, c.Min())
		}
		return n
	default:
		return g.children[0].Min()
	}
}

// Max reports the longest possible sample length in runes before collapsing.
func (g *Generator) Max() int {
	switch g.kind {
	case KindLiteral:
		return utf8.RuneCountInString(g.value)
	case KindSequence:
		n := 0
		for _, c := range g.children {
			n += c.Max()
		}
		return n
	case KindChoice:
		n := 0
		for _, c := range g.children {
			n = max(n, c.Max())
		}
		return n
	default:
		return g.children[0].Max()
	}
}

// String renders the tree as a compact expression, e.g.
// collapse(seq(choice[115], "dim")). Choices over more than
// abbreviateAfter literals are abbreviated to their size.
func (g *Generator) String() string {
	var b strings.Builder
	g.describe(&b)
	return b.String()
}

func (g *Generator) describe(b *strings.Builder) {
	if g.kind == KindLiteral {
		b.WriteString(strconv.Quote(g.value))
		return
	}
	b.WriteString(g.kind.String())
	if g.kind == KindChoice && g.literalsOnly() {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(len(g.children)))
		b.WriteByte(']')
		return
	}
	b.WriteByte('(')
	for i, c := range g.children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.describe(b)
	}
	b.WriteByte(')')
}

const abbreviateAfter = 4

func (g *Generator) literalsOnly() bool {
	if len(g.children) <= abbreviateAfter {
		return false
	}
	for _, c := range g.children {
		if c.kind != KindLiteral {
			return false
		}
	}
	return true
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
