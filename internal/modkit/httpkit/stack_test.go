package httpkit_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"sailormouth/internal/modkit/httpkit"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func api(o httpkit.StackOptions, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", func(api chi.Router) {
		api.Use(httpkit.Stack(o)...)
		api.Get("/profiles/{user}", h)
	})
	return r
}

func TestStack_Defaults(t *testing.T) {
	var deadline time.Time
	h := api(httpkit.StackOptions{}, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, chimw.GetReqID(r.Context()))
		deadline, _ = r.Context().Deadline()
		_, _ = w.Write([]byte(chi.URLParam(r, "user")))
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/bob/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", rec.Body.String(), "trailing slash is stripped")
	assert.NotEmpty(t, rec.Header().Get("Cache-Control"))
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestStack_PanicBecomesEnvelope(t *testing.T) {
	h := api(httpkit.StackOptions{}, func(http.ResponseWriter, *http.Request) { panic("boom") })
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/bob", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status_code":500`)
}

func TestStack_CORSOrigins(t *testing.T) {
	h := api(httpkit.StackOptions{CORSOrigins: []string{"https://dash.example"}}, func(w http.ResponseWriter, _ *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/bob", nil)
	req.Header.Set("Origin", "https://dash.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://dash.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStack_ThrottleCapsInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 8)
	h := api(httpkit.StackOptions{MaxInFlight: 1, Timeout: 5 * time.Second}, func(w http.ResponseWriter, _ *http.Request) {
		entered <- struct{}{}
		<-release
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/profiles/a", nil))
	}()
	<-entered

	// the second request waits in the backlog while the first holds the only slot
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/profiles/b", nil))
	}()
	select {
	case <-entered:
		t.Fatal("second request ran while the first was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	wg.Wait()
	assert.Len(t, entered, 1)
}
