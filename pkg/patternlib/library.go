package patternlib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fantasyname/pkg/cache"
	"github.com/dmitrymomot/fantasyname/pkg/logger"
	"github.com/dmitrymomot/fantasyname/pkg/namegen"
)

// Entry is a named pattern.
type Entry struct {
	Name        string `json:"name" yaml:"-"`
	Pattern     string `json:"pattern" yaml:"pattern"`
	Description string `json:"description,omitempty" yaml:"description"`
	Builtin     bool   `json:"builtin" yaml:"-"`
}

var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Library is a registry of named patterns backed by an LRU cache of
// compiled trees. It is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	entries map[string]Entry

	trees       *cache.LRUCache[string, *namegen.Generator]
	compileOpts []namegen.Option
	log         *slog.Logger
}

// New returns a library seeded with namegen.Presets unless WithoutBuiltins
// is given.
func New(opts ...Option) *Library {
	o := &options{builtins: true, cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}

	l := &Library{
		entries:     make(map[string]Entry),
		trees:       cache.NewLRUCache[string, *namegen.Generator](o.cacheSize),
		compileOpts: o.compileOpts,
		log:         o.logger.With(logger.Component("patternlib")),
	}
	if o.builtins {
		for _, p := range namegen.Presets() {
			l.entries[p.Name] = Entry{Name: p.Name, Pattern: p.Pattern, Description: p.Description, Builtin: true}
		}
	}
	return l
}

// Register adds or replaces a named pattern. The pattern must compile; its
// syntax error is returned unchanged.
func (l *Library) Register(name, pattern, description string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, err := l.Compile(pattern); err != nil {
		return err
	}

	l.mu.Lock()
	_, replaced := l.entries[name]
	l.entries[name] = Entry{Name: name, Pattern: pattern, Description: description}
	l.mu.Unlock()

	l.log.Debug("pattern registered", logger.Preset(name), logger.Pattern(pattern), slog.Bool("replaced", replaced))
	return nil
}

type libraryFile struct {
	Patterns map[string]Entry `yaml:"patterns"`
}

// Load reads a YAML library:
//
//	patterns:
//	  elf-lord:
//	    pattern: "!<s|B>V(riel|ion)"
//	    description: High elven names
//
// All entries are validated before any is registered; on failure nothing
// changes and the joined error names every offending entry. Load returns
// the number of entries registered.
func (l *Library) Load(ctx context.Context, r io.Reader) (int, error) {
	var file libraryFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, errors.Join(ErrInvalidLibrary, err)
	}

	names := make([]string, 0, len(file.Patterns))
	for name := range file.Patterns {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		e := file.Patterns[name]
		if !validName.MatchString(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidName, name))
			continue
		}
		if strings.TrimSpace(e.Pattern) == "" {
			errs = append(errs, fmt.Errorf("pattern %q: %w: empty pattern", name, ErrInvalidLibrary))
			continue
		}
		if _, err := l.Compile(e.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("pattern %q: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}

	l.mu.Lock()
	for _, name := range names {
		e := file.Patterns[name]
		l.entries[name] = Entry{Name: name, Pattern: e.Pattern, Description: e.Description}
	}
	l.mu.Unlock()

	l.log.InfoContext(ctx, "pattern library loaded", logger.Count(len(names)))
	return len(names), nil
}

// LoadFile is Load for a file on disk.
func (l *Library) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Join(ErrInvalidLibrary, err)
	}
	defer f.Close()

	n, err := l.Load(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Lookup returns the entry registered under name.
func (l *Library) Lookup(name string) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.entries[name]
	return e, ok
}

// Entries returns every entry sorted by name.
func (l *Library) Entries() []Entry {
	l.mu.RLock()
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	l.mu.RUnlock()

	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Len returns the number of entries.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Compile returns the tree for pattern, compiling it on a cache miss.
func (l *Library) Compile(pattern string) (*namegen.Generator, error) {
	return l.trees.GetOrLoad(pattern, func(p string) (*namegen.Generator, error) {
		return namegen.Compile(p, l.compileOpts...)
	})
}

// Generator returns the tree of the entry registered under name.
func (l *Library) Generator(name string) (*namegen.Generator, error) {
	e, ok := l.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return l.Compile(e.Pattern)
}

// Resolve treats s as an entry name first and as a pattern otherwise.
func (l *Library) Resolve(s string) (*namegen.Generator, error) {
	if e, ok := l.Lookup(s); ok {
		return l.Compile(e.Pattern)
	}
	return l.Compile(s)
}

// Stats reports the compiled tree cache counters.
func (l *Library) Stats() cache.Stats {
	return l.trees.Stats()
}
