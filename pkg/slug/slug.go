package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength  int
	separator  string
	lowercase  bool
	stripChars string
	replace    map[string]string
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength limits the slug to n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls case folding. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// StripChars removes the given runes before anything else, so they never
// split words. Fantasy names use it for apostrophes: "Dra'kar" becomes
// "drakar" instead of "dra-kar".
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// Replace applies literal replacements before folding,
// e.g. {"&": "and"}.
func Replace(pairs map[string]string) Option {
	return func(c *config) {
		c.replace = pairs
	}
}

// Letters without a canonical decomposition.
var ligatures = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ß", "ss",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"þ", "th", "Þ", "TH",
	"ð", "d", "Ð", "D",
)

// Fold strips diacritics: it decomposes s, drops combining marks and
// recomposes what is left, so "Éowyn Ñandú" becomes "Eowyn Nandu".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, ligatures.Replace(s))
	if err != nil {
		return s
	}
	return out
}

// Make turns s into a URL-safe slug made of ASCII letters, digits and the
// separator. Runs of any other runes collapse into a single separator and
// the result never starts or ends with one.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.replace {
		s = strings.ReplaceAll(s, old, repl)
	}
	if cfg.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(cfg.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}
	s = Fold(s)

	var b strings.Builder
	b.Grow(len(s))

	sepLen := utf8.RuneCountInString(cfg.separator)
	count := 0
	pendingSep := false

	for _, r := range s {
		if !isASCIIAlnum(r) {
			pendingSep = count > 0
			continue
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}

		need := 1
		if pendingSep {
			need += sepLen
		}
		if cfg.maxLength > 0 && count+need > cfg.maxLength {
			break
		}
		if pendingSep {
			b.WriteString(cfg.separator)
			pendingSep = false
		}
		b.WriteRune(r)
		count += need
	}

	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
