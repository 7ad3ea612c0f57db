package randomname

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
	"github.com/dmitrymomot/fantasyname/pkg/slug"
)

// Generator draws names from one compiled pattern. It is safe for
// concurrent use when its Source is.
type Generator struct {
	tree *namegen.Generator
	opts Options

	mu   sync.Mutex
	used map[string]struct{}
}

// New compiles opts.Pattern unless opts.Tree is set. Syntax errors are
// returned unchanged.
func New(opts Options) (*Generator, error) {
	opts = opts.withDefaults()

	tree := opts.Tree
	if tree == nil {
		var err error
		if tree, err = namegen.Compile(opts.Pattern); err != nil {
			return nil, err
		}
	}
	return &Generator{
		tree: tree,
		opts: opts,
		used: make(map[string]struct{}),
	}, nil
}

// Next returns one name. With Unique set the name is reserved before the
// Validator runs, so concurrent callers never receive the same name.
func (g *Generator) Next() (string, error) {
	for range g.opts.MaxAttempts {
		candidate := g.candidate()
		if candidate == "" {
			continue
		}

		if g.opts.Unique && !g.reserve(candidate) {
			continue
		}
		if g.opts.Validator != nil && !g.opts.Validator(candidate) {
			if g.opts.Unique {
				g.release(candidate)
			}
			continue
		}
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %d attempts", ErrExhausted, g.opts.MaxAttempts)
}

// Batch returns n names. On failure it returns the names produced so far
// together with the error.
func (g *Generator) Batch(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	names := make([]string, 0, n)
	for range n {
		name, err := g.Next()
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Reset forgets the names handed out so far.
func (g *Generator) Reset() {
	g.mu.Lock()
	g.used = make(map[string]struct{})
	g.mu.Unlock()
}

// Used returns how many names are currently reserved.
func (g *Generator) Used() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.used)
}

// Combinations reports the size of the underlying pattern, ignoring suffixes.
func (g *Generator) Combinations() int {
	return g.tree.Combinations()
}

func (g *Generator) candidate() string {
	name := g.tree.SampleWith(g.opts.Source)
	if g.opts.Slug {
		name = slug.Make(name, slug.StripChars("'"), slug.Separator(g.opts.Separator))
		if name == "" {
			return ""
		}
	}
	if suffix := g.opts.Suffix.format(g.opts.Source); suffix != "" {
		if name == "" {
			return suffix
		}
		name += g.opts.Separator + suffix
	}
	return name
}

func (g *Generator) reserve(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, taken := g.used[name]; taken {
		return false
	}
	g.used[name] = struct{}{}
	return true
}

func (g *Generator) release(name string) {
	g.mu.Lock()
	delete(g.used, name)
	g.mu.Unlock()
}
