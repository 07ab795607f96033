package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/coursefinder/core/course"
	"github.com/goto/coursefinder/internal/dataset"
	"github.com/goto/coursefinder/internal/server"
	esStore "github.com/goto/coursefinder/internal/store/elasticsearch"
	"github.com/goto/coursefinder/pkg/statsd"
	"github.com/goto/coursefinder/pkg/telemetry"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"
)

func serverCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server <command>",
		Aliases: []string{"s"},
		Short:   "Run coursefinder server",
		Long:    "Server management commands.",
		Example: heredoc.Doc(`
			$ coursefinder server start
			$ coursefinder server start -c ./config.yaml
			$ coursefinder server migrate
			$ coursefinder server migrate -c ./config.yaml
		`),
	}

	cmd.AddCommand(
		serverStartCommand(cfg),
		serverMigrateCommand(cfg),
	)

	return cmd
}

func serverStartCommand(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:     "start",
		Short:   "Start server on default port 8080",
		Example: "coursefinder server start",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := overrideConfigFromFlag(cmd, cfg); err != nil {
				return err
			}
			if err := runServer(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}

	return c
}

func serverMigrateCommand(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the course index",
		Example: heredoc.Doc(`
			$ coursefinder server migrate
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := overrideConfigFromFlag(cmd, cfg); err != nil {
				return err
			}
			return runMigrations(cmd.Context(), cfg)
		},
	}

	return c
}

func runServer(ctx context.Context, config *Config) error {
	logger := initLogger(config.LogLevel)
	logger.Info("coursefinder starting", "version", Version)

	config.Telemetry.AppVersion = Version
	nrApp, cleanUpTelemetry, err := telemetry.Init(ctx, config.Telemetry, logger)
	if err != nil {
		return err
	}
	defer cleanUpTelemetry()

	statsdReporter, err := statsd.Init(logger, config.StatsD)
	if err != nil {
		return err
	}
	defer statsdReporter.Close()

	esClient, err := initElasticsearch(logger, config.Elasticsearch)
	if err != nil {
		return err
	}
	if err := esClient.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate course index: %w", err)
	}

	courseService := newCourseService(logger, esClient, config.Dataset)
	if config.Dataset.BootstrapOnStart {
		go bootstrap(ctx, logger, courseService)
	}

	return server.Serve(
		ctx,
		config.Service,
		logger,
		nrApp,
		statsdReporter,
		courseService,
	)
}

// bootstrap fills an empty index. A failure is logged and leaves the
// server running, the index can be filled later with a reindex.
func bootstrap(ctx context.Context, logger log.Logger, svc *course.Service) {
	report, err := svc.Bootstrap(ctx)
	if err != nil {
		if errors.Is(err, course.ErrReindexInProgress) {
			logger.Info("skipping initial load, a reindex is running")
			return
		}
		logger.Error("failed to load initial course data", "err", err)
		return
	}
	if report.Skipped {
		return
	}
	logger.Info("initial course data loaded", "indexed", report.Indexed, "failed", report.Failed)
}

func runMigrations(ctx context.Context, config *Config) error {
	fmt.Println("Preparing migration...")

	logger := initLogger(config.LogLevel)
	logger.Info("coursefinder is migrating", "version", Version)

	esClient, err := initElasticsearch(logger, config.Elasticsearch)
	if err != nil {
		return err
	}

	logger.Info("Migrating Elasticsearch...", "index", esClient.Index())
	if err := esClient.Migrate(ctx); err != nil {
		return fmt.Errorf("problem with migration %w", err)
	}
	logger.Info("Migration Elasticsearch done.")

	return nil
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}

func initElasticsearch(logger log.Logger, config esStore.Config) (*esStore.Client, error) {
	esClient, err := esStore.NewClient(logger, config)
	if err != nil {
		return nil, fmt.Errorf("create new elasticsearch client: %w", err)
	}
	got, err := esClient.Init()
	if err != nil {
		return nil, fmt.Errorf("establish connection to elasticsearch: %w", err)
	}
	logger.Info("connected to elasticsearch", "info", got)
	return esClient, nil
}

func newCourseService(logger log.Logger, esClient *esStore.Client, cfg dataset.Config) *course.Service {
	return course.NewService(course.ServiceDeps{
		DiscoveryRepo: esStore.NewDiscoveryRepository(esClient, logger),
		Dataset:       dataset.New(cfg, logger),
		Logger:        logger,
	})
}
