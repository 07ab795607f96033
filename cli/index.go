package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/coursefinder/core/course"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func indexCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Load the dataset into an empty course index",
		Long: heredoc.Doc(`
			Load the configured dataset into the course index. Nothing is
			written when the index already holds courses.
		`),
		Example: heredoc.Doc(`
			$ coursefinder index
			$ coursefinder index -c ./config.yaml
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, cfg, func(svc *course.Service, cmd *cobra.Command) (course.IndexReport, error) {
				return svc.Bootstrap(cmd.Context())
			})
		},
	}
}

func reindexCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Delete every course and load the dataset again",
		Example: heredoc.Doc(`
			$ coursefinder reindex
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, cfg, func(svc *course.Service, cmd *cobra.Command) (course.IndexReport, error) {
				return svc.Reindex(cmd.Context())
			})
		},
	}
}

func runIndex(cmd *cobra.Command, cfg *Config, run func(*course.Service, *cobra.Command) (course.IndexReport, error)) error {
	if err := overrideConfigFromFlag(cmd, cfg); err != nil {
		return err
	}

	spinner := printer.Spin("")
	defer spinner.Stop()

	logger := initLogger(cfg.LogLevel)
	esClient, err := initElasticsearch(logger, cfg.Elasticsearch)
	if err != nil {
		return err
	}
	if err := esClient.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migrate course index: %w", err)
	}

	report, err := run(newCourseService(logger, esClient, cfg.Dataset), cmd)
	if err != nil {
		return err
	}

	spinner.Stop()
	if report.Skipped {
		fmt.Println(term.Yellow("Index already holds courses, nothing loaded"))
		return nil
	}

	printer.Table(os.Stdout, [][]string{
		{"TOTAL", "INDEXED", "FAILED"},
		{strconv.Itoa(report.Total), term.Greenf("%d", report.Indexed), term.Redf("%d", report.Failed)},
	})
	return nil
}
