package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "sailormouth/internal/platform/errors"
	"sailormouth/internal/platform/logger"
	phttp "sailormouth/internal/platform/net/http"
	"sailormouth/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the root logger into a buffer for the rest of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Init(logger.Options{Format: "json", Level: "debug", Writer: &buf})
	t.Cleanup(func() { logger.Init(logger.FromEnv()) })
	return &buf
}

func lines(buf *bytes.Buffer) []map[string]any {
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		if json.Unmarshal([]byte(l), &m) == nil {
			out = append(out, m)
		}
	}
	return out
}

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestAccessLog_TagsRequestID(t *testing.T) {
	buf := captureLogs(t)
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "hello")
	}), chimw.RequestID, middleware.RequestLogger, middleware.AccessLog(0))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/bob", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	ls := lines(buf)
	require.Len(t, ls, 1)
	assert.Equal(t, "info", ls[0]["level"])
	assert.Equal(t, "/api/v1/profiles/bob", ls[0]["path"])
	assert.EqualValues(t, 201, ls[0]["status"])
	assert.EqualValues(t, 5, ls[0]["bytes"])
	assert.NotEmpty(t, ls[0]["request_id"])
}

func TestAccessLog_SlowIsWarn(t *testing.T) {
	buf := captureLogs(t)
	h := middleware.AccessLog(time.Nanosecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	ls := lines(buf)
	require.Len(t, ls, 1)
	assert.Equal(t, "warn", ls[0]["level"])
	assert.EqualValues(t, 200, ls[0]["status"])
}

func TestRecover_EnvelopedPanic(t *testing.T) {
	buf := captureLogs(t)
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("matcher exploded")
	}), chimw.RequestID, middleware.RequestLogger, middleware.Recover)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, perr.ErrorCodePanic, env.Code)
	assert.Equal(t, "internal error", env.Error)
	assert.NotEmpty(t, env.RequestID)
	assert.NotContains(t, rec.Body.String(), "matcher exploded")

	ls := lines(buf)
	require.NotEmpty(t, ls)
	assert.Equal(t, "matcher exploded", ls[0]["panic"])
}

func TestRecover_AbortHandlerPropagates(t *testing.T) {
	h := middleware.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestCORS_Preflight(t *testing.T) {
	h := middleware.CORS([]string{"https://dash.example"})(http.NotFoundHandler())

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/profiles", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	ok := preflight("https://dash.example")
	assert.Equal(t, "https://dash.example", ok.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, ok.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	denied := preflight("https://evil.example")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}
