package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/coursefinder/pkg/statsd"
)

func statsDMiddleware(reporter *statsd.Reporter) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		if reporter == nil {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responseWriter(w)
			h.ServeHTTP(rw, r)

			route := routePattern(r)
			reporter.Timing("responseTime", time.Since(start)).
				Tag("method", r.Method).
				Tag("url", route).
				Publish()

			status := reporter.Incr("responseStatusCode").
				Tag("statusCode", strconv.Itoa(rw.statusCode)).
				Tag("method", r.Method).
				Tag("url", route)
			if rw.statusCode < http.StatusInternalServerError {
				status.Success().Publish()
			} else {
				status.Failure().Publish()
			}
		})
	}
}

// routePattern prefers the route template so that metrics do not
// fan out per query string or path value.
func routePattern(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

func responseWriter(w http.ResponseWriter) *interceptedResponseWriter {
	return &interceptedResponseWriter{w, http.StatusOK}
}

type interceptedResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *interceptedResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
