package statsd

import (
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
)

// Reporter publishes metrics to a statsd agent. A disabled or nil
// Reporter accepts every call and publishes nothing.
type Reporter struct {
	client std.ClientInterface
	logger log.Logger
	config Config
}

// Init validates the config and initializes the statsD client.
func Init(logger log.Logger, cfg Config) (*Reporter, error) {
	if logger == nil {
		logger = log.NewNoop()
	}
	reporter := &Reporter{logger: logger, config: cfg}
	if !cfg.Enabled {
		logger.Warn("statsd is disabled")
		return reporter, nil
	}

	client, err := std.New(cfg.Address,
		std.WithNamespace(cfg.Prefix+"."),
		std.WithoutTelemetry())
	if err != nil {
		return nil, err
	}

	reporter.client = client
	return reporter, nil
}

// Close flushes and closes the statsd connection
func (sd *Reporter) Close() {
	if sd == nil || sd.client == nil {
		return
	}
	if err := sd.client.Close(); err != nil {
		sd.logger.Warn("failed to close statsd client", "err", err)
	}
}

// Incr returns a increment counter metric.
func (sd *Reporter) Incr(name string) *Metric {
	return sd.newMetric(name, func(client std.ClientInterface, name string, tags []string, rate float64) error {
		return client.Incr(name, tags, rate)
	})
}

// Timing returns a timer metric.
func (sd *Reporter) Timing(name string, value time.Duration) *Metric {
	return sd.newMetric(name, func(client std.ClientInterface, name string, tags []string, rate float64) error {
		return client.Timing(name, value, tags, rate)
	})
}

func (sd *Reporter) newMetric(name string, publish func(client std.ClientInterface, name string, tags []string, rate float64) error) *Metric {
	if sd == nil {
		return nil
	}

	return &Metric{
		rate:          sd.config.SamplingRate,
		logger:        sd.logger,
		name:          name,
		withInfluxTag: sd.config.WithInfluxTagFormat,
		publishFunc: func(name string, tags []string, rate float64) error {
			if sd.client == nil {
				return nil
			}

			return publish(sd.client, name, tags, rate)
		},
	}
}
