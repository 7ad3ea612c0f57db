// Package namegen compiles a small pattern language into generator trees that
// produce random fantasy names. The grammar follows the RinkWorks fantasy name
// generator.
//
// # Pattern syntax
//
// Outside brackets and inside angle brackets the following runes expand to a
// random entry of a built-in table; everything else is produced literally:
//
//	s  generic syllable
//	v  vowel
//	V  vowel or vowel combination
//	c  consonant
//	B  consonant or combination suitable for beginning a word
//	C  consonant or combination suitable anywhere in a word
//	i  insult
//	m  mushy name
//	M  mushy name ending
//	D  consonant suited for a stupid person's name
//	d  syllable suited for a stupid person's name (begins with a vowel)
//
// Runes between parentheses are produced literally: "s(dim)" yields a random
// syllable followed by "dim". Angle brackets switch back to table lookups, so
// the whole pattern behaves as if wrapped in <...>.
//
// In both kinds of group a vertical bar separates alternatives, and empty
// alternatives are allowed: "(foo|bar)" yields "foo" or "bar", "<c|v|>" yields
// a consonant, a vowel or nothing.
//
// Inside a symbol group '!' capitalizes the next element and '~' reverses it:
// "!(foo)" yields "Foo", "~(foo)" yields "oof". To reverse a whole template
// wrap it first, as in "~<sV'i>". Inside parentheses both are plain runes.
//
// Unknown runes in a symbol group are literals, not errors. Only bracket
// mistakes fail compilation, with a *SyntaxError matching ErrSyntax.
//
// # Sampling
//
// A compiled tree is immutable. Each call to Sample walks it once:
//
//	g, err := namegen.Compile("!sV'i")
//	if err != nil {
//		return err
//	}
//	name := g.Sample() // e.g. "Entheu'loaf"
//
// Every choice picks a direct child uniformly, regardless of how many
// expansions the child has, so Combinations describes the pattern but does
// not weight the draw. Min and Max are rune counts before the root collapse
// step and are therefore bounds, not exact figures.
//
// The root of every compiled tree collapses runs of repeated letters (see
// CollapseRuns); WithoutCollapse disables it.
//
// # Randomness
//
// Sample uses the Source given to WithSource or the concurrency-safe
// math/rand/v2 default. SampleWith takes an explicit Source, which makes it
// easy to sample from a seeded generator (NewSeededSource) or to replay
// scripted picks in tests.
//
// # Presets
//
// The package ships a library of ready-made patterns as string
// constants (MiddleEarth, Greek, WholeName, ...). Presets lists them with
// stable kebab-case names.
package namegen
