package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fantasyname/pkg/logger"
	"github.com/dmitrymomot/fantasyname/pkg/namegen"
	"github.com/dmitrymomot/fantasyname/pkg/patternlib"
	"github.com/dmitrymomot/fantasyname/pkg/randomname"
)

const maxBodyBytes = 64 << 10

// Limits bounds the work a single request may ask for.
type Limits struct {
	MaxPatternLength int
	MaxBatch         int
}

// DefaultLimits are used for zero fields of Limits.
var DefaultLimits = Limits{MaxPatternLength: 1024, MaxBatch: 100}

func (l Limits) withDefaults() Limits {
	if l.MaxPatternLength <= 0 {
		l.MaxPatternLength = DefaultLimits.MaxPatternLength
	}
	if l.MaxBatch <= 0 {
		l.MaxBatch = DefaultLimits.MaxBatch
	}
	return l
}

// Handler serves the name generation endpoints.
type Handler struct {
	lib     *patternlib.Library
	limits  Limits
	log     *slog.Logger
	metrics *Metrics
}

// NewHandler returns a handler over lib. A nil metrics gets a private registry.
func NewHandler(lib *patternlib.Library, limits Limits, log *slog.Logger, metrics *Metrics) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	if metrics == nil {
		metrics = NewMetrics(nil, lib)
	}
	return &Handler{
		lib:     lib,
		limits:  limits.withDefaults(),
		log:     log.With(logger.Component("api")),
		metrics: metrics,
	}
}

// PatternInfo describes a compiled pattern.
type PatternInfo struct {
	Name         string `json:"name,omitempty"`
	Pattern      string `json:"pattern"`
	Description  string `json:"description,omitempty"`
	Builtin      bool   `json:"builtin,omitempty"`
	Combinations int    `json:"combinations"`
	Min          int    `json:"min"`
	Max          int    `json:"max"`
	Tree         string `json:"tree,omitempty"`
}

func describe(tree *namegen.Generator) PatternInfo {
	return PatternInfo{
		Combinations: tree.Combinations(),
		Min:          tree.Min(),
		Max:          tree.Max(),
	}
}

type compileRequest struct {
	Pattern string `json:"pattern"`
}

type generateRequest struct {
	Pattern string  `json:"pattern"`
	Preset  string  `json:"preset"`
	Count   int     `json:"count"`
	Unique  bool    `json:"unique"`
	Slug    bool    `json:"slug"`
	Suffix  string  `json:"suffix"`
	Seed    *uint64 `json:"seed"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

func (h *Handler) listPresets(w http.ResponseWriter, r *http.Request) {
	entries := h.lib.Entries()
	out := make([]PatternInfo, 0, len(entries))
	for _, e := range entries {
		tree, err := h.lib.Compile(e.Pattern)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		info := describe(tree)
		info.Name, info.Pattern, info.Description, info.Builtin = e.Name, e.Pattern, e.Description, e.Builtin
		out = append(out, info)
	}
	respond(w, out, map[string]any{"total": len(out)})
}

func (h *Handler) getPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	e, ok := h.lib.Lookup(name)
	if !ok {
		respondError(w, r, h.log, fmt.Errorf("%w: %q", patternlib.ErrUnknownPattern, name))
		return
	}
	tree, err := h.lib.Compile(e.Pattern)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	info := describe(tree)
	info.Name, info.Pattern, info.Description, info.Builtin = e.Name, e.Pattern, e.Description, e.Builtin
	info.Tree = tree.String()
	respond(w, info, nil)
}

func (h *Handler) presetNames(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, r, h.log, badRequest("count must be a positive integer"))
			return
		}
		count = n
	}
	if err := h.checkCount(count); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	tree, err := h.lib.Generator(name)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	names, err := h.generate(tree, generateRequest{Count: count})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.metrics.generated("preset", len(names))
	respond(w, namesResponse{Names: names}, map[string]any{"preset": name})
}

func (h *Handler) compile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.checkPattern(req.Pattern); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	tree, err := h.compilePattern(req.Pattern)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	info := describe(tree)
	info.Pattern = req.Pattern
	info.Tree = tree.String()
	respond(w, info, nil)
}

func (h *Handler) generateNames(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if (req.Pattern == "") == (req.Preset == "") {
		respondError(w, r, h.log, badRequest("exactly one of pattern or preset is required"))
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if err := h.checkCount(req.Count); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var (
		tree   *namegen.Generator
		err    error
		origin = "pattern"
	)
	if req.Preset != "" {
		origin = "preset"
		tree, err = h.lib.Generator(req.Preset)
	} else {
		if err = h.checkPattern(req.Pattern); err == nil {
			tree, err = h.compilePattern(req.Pattern)
		}
	}
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	names, err := h.generate(tree, req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.metrics.generated(origin, len(names))
	h.log.DebugContext(r.Context(), "names generated", logger.Count(len(names)), slog.String("origin", origin))
	respond(w, namesResponse{Names: names}, map[string]any{"combinations": tree.Combinations()})
}

func (h *Handler) generate(tree *namegen.Generator, req generateRequest) ([]string, error) {
	suffix, err := parseSuffix(req.Suffix)
	if err != nil {
		return nil, err
	}
	opts := randomname.Options{
		Tree:   tree,
		Suffix: suffix,
		Slug:   req.Slug,
		Unique: req.Unique,
	}
	if req.Seed != nil {
		opts.Source = namegen.NewSeededSource(*req.Seed)
	}
	gen, err := randomname.New(opts)
	if err != nil {
		return nil, err
	}
	return gen.Batch(req.Count)
}

func (h *Handler) compilePattern(pattern string) (*namegen.Generator, error) {
	tree, err := h.lib.Compile(pattern)
	if errors.Is(err, namegen.ErrSyntax) {
		h.metrics.compileFailed()
	}
	return tree, err
}

func (h *Handler) checkPattern(pattern string) error {
	if pattern == "" {
		return badRequest("pattern is required")
	}
	if n := utf8.RuneCountInString(pattern); n > h.limits.MaxPatternLength {
		return badRequest(fmt.Sprintf("pattern is %d runes long, limit is %d", n, h.limits.MaxPatternLength))
	}
	return nil
}

func (h *Handler) checkCount(n int) error {
	if n < 1 {
		return badRequest("count must be a positive integer")
	}
	if n > h.limits.MaxBatch {
		return badRequest(fmt.Sprintf("count %d exceeds the batch limit of %d", n, h.limits.MaxBatch))
	}
	return nil
}

func parseSuffix(s string) (randomname.SuffixType, error) {
	switch s {
	case "", "none":
		return randomname.NoSuffix, nil
	case "hex6":
		return randomname.Hex6, nil
	case "hex8":
		return randomname.Hex8, nil
	case "numeric4":
		return randomname.Numeric4, nil
	}
	return randomname.NoSuffix, badRequest(fmt.Sprintf("unknown suffix %q", s))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return badRequest("invalid JSON body: " + err.Error())
	}
	return nil
}
