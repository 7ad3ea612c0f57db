package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fantasyname/internal/api"
	"github.com/dmitrymomot/fantasyname/pkg/environment"
	"github.com/dmitrymomot/fantasyname/pkg/namegen"
	"github.com/dmitrymomot/fantasyname/pkg/patternlib"
	"github.com/dmitrymomot/fantasyname/pkg/ratelimiter"
	"github.com/dmitrymomot/fantasyname/pkg/requestid"
)

type envelope struct {
	Code  string          `json:"code"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

type names struct {
	Names []string `json:"names"`
}

func newServer(t *testing.T, limits api.Limits) *httptest.Server {
	t.Helper()
	lib := patternlib.New(patternlib.WithCompileOptions(namegen.WithMaxDepth(4)))
	metrics := api.NewMetrics(nil, lib)
	router := api.NewRouter(api.RouterConfig{
		Handler: api.NewHandler(lib, limits, nil, metrics),
		Metrics: metrics,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	srv := newServer(t, api.Limits{})

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ALIVE", string(body))
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))
}

func TestCompile(t *testing.T) {
	t.Parallel()
	srv := newServer(t, api.Limits{})

	t.Run("valid pattern", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodPost, "/v1/compile", `{"pattern":"(foo|bar)"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", env.Code)

		var info api.PatternInfo
		require.NoError(t, json.Unmarshal(env.Data, &info))
		assert.Equal(t, 2, info.Combinations)
		assert.Equal(t, 3, info.Min)
		assert.Equal(t, 3, info.Max)
		assert.Equal(t, `collapse(choice("foo", "bar"))`, info.Tree)
	})

	t.Run("syntax error", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodPost, "/v1/compile", `{"pattern":"(a"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "invalid_pattern", env.Error.Code)
		assert.Equal(t, []string{namegen.ErrMissingClosingBracket.Error()}, env.Error.Details["pattern"])
	})

	t.Run("too deep", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodPost, "/v1/compile", `{"pattern":"<<<<<a>>>>>"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "invalid_pattern", env.Error.Code)
	})

	t.Run("empty pattern", func(t *testing.T) {
		resp, _ := do(t, srv, http.MethodPost, "/v1/compile", `{"pattern":""}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown field", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodPost, "/v1/compile", `{"pattern":"s","extra":1}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "bad_request", env.Error.Code)
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	srv := newServer(t, api.Limits{MaxBatch: 5, MaxPatternLength: 16})

	t.Run("pattern", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodPost, "/v1/generate", `{"pattern":"!(foo)","count":3}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out names
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, []string{"Foo", "Foo", "Foo"}, out.Names)
	})

	t.Run("preset defaults to one name", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodPost, "/v1/generate", `{"preset":"greek"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out names
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Len(t, out.Names, 1)
	})

	t.Run("seeded requests repeat", func(t *testing.T) {
		body := `{"preset":"middle-earth","count":5,"seed":42}`
		_, first := do(t, srv, http.MethodPost, "/v1/generate", body)
		_, second := do(t, srv, http.MethodPost, "/v1/generate", body)
		assert.JSONEq(t, string(first.Data), string(second.Data))
	})

	t.Run("slug with suffix", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodPost, "/v1/generate", `{"pattern":"!(ab) !(cd)","slug":true,"suffix":"numeric4"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out names
		require.NoError(t, json.Unmarshal(env.Data, &out))
		require.Len(t, out.Names, 1)
		assert.Regexp(t, `^ab-cd-[0-9]{4}$`, out.Names[0])
	})

	t.Run("unique exhaustion", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodPost, "/v1/generate", `{"pattern":"(a|b)","count":3,"unique":true}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "exhausted", env.Error.Code)
	})

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"both pattern and preset", `{"pattern":"s","preset":"greek"}`, http.StatusBadRequest, "bad_request"},
		{"neither pattern nor preset", `{"count":2}`, http.StatusBadRequest, "bad_request"},
		{"batch limit", `{"pattern":"s","count":6}`, http.StatusBadRequest, "bad_request"},
		{"negative count", `{"pattern":"s","count":-1}`, http.StatusBadRequest, "bad_request"},
		{"pattern length", `{"pattern":"sssssssssssssssss"}`, http.StatusBadRequest, "bad_request"},
		{"unknown suffix", `{"pattern":"s","suffix":"roman"}`, http.StatusBadRequest, "bad_request"},
		{"unknown preset", `{"preset":"klingon"}`, http.StatusNotFound, "unknown_preset"},
		{"syntax error", `{"pattern":"a)"}`, http.StatusUnprocessableEntity, "invalid_pattern"},
		{"malformed body", `{"pattern":`, http.StatusBadRequest, "bad_request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := do(t, srv, http.MethodPost, "/v1/generate", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Meta["request_id"])
		})
	}
}

func TestPresets(t *testing.T) {
	t.Parallel()
	srv := newServer(t, api.Limits{MaxBatch: 10})

	t.Run("list", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodGet, "/v1/presets", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []api.PatternInfo
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Len(t, list, len(namegen.Presets()))
		assert.EqualValues(t, len(list), env.Meta["total"])
		for _, p := range list {
			assert.True(t, p.Builtin, p.Name)
			assert.Positive(t, p.Combinations, p.Name)
			assert.LessOrEqual(t, p.Min, p.Max, p.Name)
		}
	})

	t.Run("get", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodGet, "/v1/presets/greek", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var info api.PatternInfo
		require.NoError(t, json.Unmarshal(env.Data, &info))
		assert.Equal(t, "greek", info.Name)
		assert.Equal(t, namegen.Greek, info.Pattern)
		assert.NotEmpty(t, info.Tree)
	})

	t.Run("names", func(t *testing.T) {
		resp, env := do(t, srv, http.MethodGet, "/v1/presets/male-given/names?count=4", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out names
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Len(t, out.Names, 4)
		assert.Equal(t, "male-given", env.Meta["preset"])
	})

	t.Run("errors", func(t *testing.T) {
		resp, _ := do(t, srv, http.MethodGet, "/v1/presets/nope", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = do(t, srv, http.MethodGet, "/v1/presets/nope/names", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = do(t, srv, http.MethodGet, "/v1/presets/greek/names?count=11", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, _ = do(t, srv, http.MethodGet, "/v1/presets/greek/names?count=zero", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRouting(t *testing.T) {
	t.Parallel()
	srv := newServer(t, api.Limits{})

	resp, env := do(t, srv, http.MethodGet, "/v2/nothing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)

	resp, env = do(t, srv, http.MethodGet, "/v1/generate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}

func TestRequestIDPropagation(t *testing.T) {
	t.Parallel()
	srv := newServer(t, api.Limits{})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/generate", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	req.Header.Set(requestid.Header, "client-id-1")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "client-id-1", resp.Header.Get(requestid.Header))
	assert.Equal(t, "client-id-1", env.Meta["request_id"])
}

func TestMetrics(t *testing.T) {
	t.Parallel()
	srv := newServer(t, api.Limits{})

	do(t, srv, http.MethodPost, "/v1/generate", `{"pattern":"s","count":3}`)
	do(t, srv, http.MethodPost, "/v1/compile", `{"pattern":"<s"}`)

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `namegen_names_generated_total{origin="pattern"} 3`)
	assert.Contains(t, body, "namegen_compile_errors_total 1")
	assert.Contains(t, body, `namegen_http_requests_total{code="200",method="POST",route="/v1/generate"} 1`)
	assert.Contains(t, body, "namegen_pattern_cache_misses_total")
	assert.Contains(t, body, "namegen_patterns_registered")
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	lib := patternlib.New()
	srv := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Handler:     api.NewHandler(lib, api.Limits{}, nil, nil),
		RateLimiter: bucket,
	}))
	t.Cleanup(srv.Close)

	for range 2 {
		resp, _ := do(t, srv, http.MethodGet, "/v1/presets/greek", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, env := do(t, srv, http.MethodGet, "/v1/presets/greek", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	require.NotNil(t, env.Error)
	assert.Equal(t, "rate_limited", env.Error.Code)

	resp, _ = do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "health checks are not limited")
}

type brokenStore struct{}

func (brokenStore) Consume(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("store offline")
}

func (brokenStore) Reset(context.Context, string) error { return nil }

func TestInternalErrorDetails(t *testing.T) {
	t.Parallel()

	bucket, err := ratelimiter.NewBucket(brokenStore{}, ratelimiter.PerMinute(60, 10))
	require.NoError(t, err)

	tests := []struct {
		env     environment.Environment
		details []string
	}{
		{environment.Development, []string{"store offline"}},
		{environment.Production, nil},
	}
	for _, tt := range tests {
		t.Run(tt.env.String(), func(t *testing.T) {
			srv := httptest.NewServer(api.NewRouter(api.RouterConfig{
				Handler:     api.NewHandler(patternlib.New(), api.Limits{}, nil, nil),
				RateLimiter: bucket,
				Environment: tt.env,
			}))
			defer srv.Close()

			resp, env := do(t, srv, http.MethodGet, "/v1/presets", "")
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			require.NotNil(t, env.Error)
			assert.Equal(t, "internal_error", env.Error.Code)
			assert.Equal(t, "internal server error", env.Error.Message)
			assert.Equal(t, tt.details, env.Error.Details["cause"])
		})
	}
}
