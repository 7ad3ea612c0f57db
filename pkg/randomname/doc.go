// Package randomname generates ready-to-use names from namegen patterns.
//
// The helpers cover the common cases:
//
//	randomname.Whole()  // "Elowen Frostbane"
//	randomname.Male()   // "Caspian Ashthorn"
//	randomname.Slug()   // "elowen-frostbane-a3f21b"
//
// A Generator adds slugs, suffixes, per-session uniqueness and validation
// on top of any pattern:
//
//	g, err := randomname.New(randomname.Options{
//		Pattern:   namegen.Greek,
//		Unique:    true,
//		Slug:      true,
//		Validator: func(s string) bool { return len(s) <= 12 },
//	})
//	names, err := g.Batch(10)
//
// Each name gets at most MaxAttempts candidates; when every one is rejected
// Next returns ErrExhausted. Uniqueness is tracked in memory only.
package randomname
