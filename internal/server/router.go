package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/coursefinder/pkg/statsd"
	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/integrations/nrgorilla"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type RouterDeps struct {
	Logger         log.Logger
	NewRelic       *newrelic.Application
	StatsD         *statsd.Reporter
	CourseService  CourseService
	AllowedOrigins []string
}

// NewRouter returns the HTTP handler serving the course search API.
func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = log.NewNoop()
	}

	courseHandler := NewCourseHandler(logger, deps.CourseService)

	router := mux.NewRouter()
	if deps.NewRelic != nil {
		router.Use(nrgorilla.Middleware(deps.NewRelic))
	}
	router.Use(statsDMiddleware(deps.StatsD))

	api := router.PathPrefix("/api").Subrouter()
	api.Path("/search").
		Methods(http.MethodGet).
		HandlerFunc(courseHandler.Search)
	api.Path("/search/suggest").
		Methods(http.MethodGet).
		HandlerFunc(courseHandler.Suggest)
	api.Path("/admin/reindex").
		Methods(http.MethodPost).
		HandlerFunc(courseHandler.Reindex)
	api.Path("/health").
		Methods(http.MethodGet).
		HandlerFunc(healthHandler)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	return withDefaultHandlers(router, deps.AllowedOrigins)
}
