package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/goto/coursefinder/pkg/statsd"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsDMiddleware(t *testing.T) {
	t.Run("handlers should still be called if StatsD is nil", func(t *testing.T) {
		var called bool
		h := statsDMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
		}))

		rw := httptest.NewRecorder()
		h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, called)
		assert.Equal(t, http.StatusTeapot, rw.Code)
	})

	t.Run("handlers should be called with a disabled reporter", func(t *testing.T) {
		reporter, err := statsd.Init(log.NewNoop(), statsd.Config{})
		require.NoError(t, err)

		router := mux.NewRouter()
		router.Use(statsDMiddleware(reporter))
		router.Path("/api/search").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		rw := httptest.NewRecorder()
		router.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/api/search", nil))

		assert.Equal(t, http.StatusInternalServerError, rw.Code)
	})
}

func TestRoutePattern(t *testing.T) {
	var got string
	router := mux.NewRouter()
	router.Path("/api/courses/{id}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = routePattern(r)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/courses/course-001?x=1", nil))
	assert.Equal(t, "/api/courses/{id}", got)

	assert.Equal(t, "/plain", routePattern(httptest.NewRequest(http.MethodGet, "/plain", nil)))
}

func TestInterceptedResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := responseWriter(rec)

	assert.Equal(t, http.StatusOK, rw.statusCode)
	rw.WriteHeader(http.StatusConflict)
	assert.Equal(t, http.StatusConflict, rw.statusCode)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
