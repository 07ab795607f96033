package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/goto/coursefinder/pkg/statsd"
	"github.com/goto/salt/log"
	"github.com/goto/salt/mux"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type Config struct {
	Host string `yaml:"host" mapstructure:"host" default:"0.0.0.0"`
	Port int    `yaml:"port" mapstructure:"port" default:"8080"`

	// Origins allowed to call the API from a browser, every origin when empty
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

func (cfg Config) addr() string { return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port) }

func Serve(
	ctx context.Context,
	config Config,
	logger log.Logger,
	nrApp *newrelic.Application,
	statsdReporter *statsd.Reporter,
	courseService CourseService,
) error {
	router := NewRouter(RouterDeps{
		Logger:         logger,
		NewRelic:       nrApp,
		StatsD:         statsdReporter,
		CourseService:  courseService,
		AllowedOrigins: config.AllowedOrigins,
	})

	logger.Info("Starting server", "http_port", config.addr())
	if err := mux.Serve(
		ctx,
		mux.WithHTTPTarget(config.addr(), &http.Server{
			Handler:      router,
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}),
		mux.WithGracePeriod(5*time.Second),
	); !errors.Is(err, context.Canceled) {
		logger.Error("mux serve error", "err", err)
	}

	logger.Info("server stopped")
	return nil
}

// withDefaultHandlers wraps h with panic recovery, CORS and gzip compression.
func withDefaultHandlers(h http.Handler, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return handlers.RecoveryHandler()(handlers.CompressHandler(cors(h)))
}
