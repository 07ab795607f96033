package cli

import "github.com/MakeNowJust/heredoc"

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		Every configuration key can be set from the environment. Keys are
		upper cased, prefixed with COURSEFINDER_ and nested keys are joined
		with an underscore.

		COURSEFINDER_LOG_LEVEL: debug, info, warn or error.

		COURSEFINDER_ELASTICSEARCH_BROKERS: comma separated Elasticsearch URLs.

		COURSEFINDER_ELASTICSEARCH_INDEX: name of the course index.

		COURSEFINDER_SERVICE_HOST, COURSEFINDER_SERVICE_PORT: HTTP listen address.

		COURSEFINDER_DATASET_PATH: JSON file of courses, the bundled sample when empty.

		COURSEFINDER_DATASET_BOOTSTRAP_ON_START: load the dataset into an empty index on start.

		COURSEFINDER_STATSD_ENABLED, COURSEFINDER_STATSD_ADDRESS: StatsD reporting.

		COURSEFINDER_TELEMETRY_NEWRELIC_ENABLED, COURSEFINDER_TELEMETRY_NEWRELIC_LICENSEKEY: New Relic agent.

		COURSEFINDER_TELEMETRY_OPEN_TELEMETRY_ENABLED: export metrics and traces to an OTLP collector.
	`),
}
