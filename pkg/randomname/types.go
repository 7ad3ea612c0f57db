package randomname

import (
	"fmt"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
)

// SuffixType selects a random tag appended to each name.
type SuffixType int

const (
	NoSuffix SuffixType = iota
	Hex6                // a3f21b
	Hex8                // a3f21b9c
	Numeric4            // 4829
)

func (s SuffixType) format(src namegen.Source) string {
	switch s {
	case Hex6:
		return fmt.Sprintf("%06x", src.IntN(1<<24))
	case Hex8:
		// Two 16-bit draws keep the argument within a 32-bit int.
		return fmt.Sprintf("%08x", uint32(src.IntN(1<<16))<<16|uint32(src.IntN(1<<16)))
	case Numeric4:
		return fmt.Sprintf("%04d", src.IntN(10000))
	default:
		return ""
	}
}

const defaultMaxAttempts = 100

// Options configures a Generator. The zero value generates whole names.
type Options struct {
	// Pattern is compiled with namegen.Compile. Default: namegen.WholeName.
	Pattern string

	// Tree is used instead of Pattern when set, e.g. a tree taken from a
	// patternlib.Library cache.
	Tree *namegen.Generator

	// Suffix appends a random tag after Separator.
	Suffix SuffixType

	// Separator joins the suffix to the name and the words of a slug.
	// Default: "-".
	Separator string

	// Slug turns every name into a lower-case ASCII slug.
	Slug bool

	// Unique rejects names already returned since the last Reset.
	Unique bool

	// Validator rejects candidates when it returns false.
	Validator func(string) bool

	// MaxAttempts bounds the candidates drawn for one name. Default: 100.
	MaxAttempts int

	// Source supplies randomness. Default: namegen.DefaultSource().
	Source namegen.Source
}

func (o Options) withDefaults() Options {
	if o.Pattern == "" {
		o.Pattern = namegen.WholeName
	}
	if o.Separator == "" {
		o.Separator = "-"
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.Source == nil {
		o.Source = namegen.DefaultSource()
	}
	return o
}
