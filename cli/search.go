package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/coursefinder/core/course"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func searchCommand(cfg *Config) *cobra.Command {
	var (
		category, typ, sort, startDate, output string
		minAge, maxAge, page, size         int
		minPrice, maxPrice                 float64
	)

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search courses",
		Example: heredoc.Doc(`
			$ coursefinder search robotics
			$ coursefinder search --category Art --max-price 50 --sort priceAsc
			$ coursefinder search --min-age 8 --max-age 10 --start-date 2025-09-01 -o json
		`),
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := overrideConfigFromFlag(cmd, cfg); err != nil {
				return err
			}

			raw := course.RawCriteria{
				Category: category,
				Type:     typ,
				Sort:     sort,
			}
			if len(args) > 0 {
				raw.Text = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("min-age") {
				raw.MinAge = &minAge
			}
			if flags.Changed("max-age") {
				raw.MaxAge = &maxAge
			}
			if flags.Changed("min-price") {
				raw.MinPrice = &minPrice
			}
			if flags.Changed("max-price") {
				raw.MaxPrice = &maxPrice
			}
			if flags.Changed("page") {
				raw.Page = &page
			}
			if flags.Changed("size") {
				raw.PageSize = &size
			}
			if startDate != "" {
				date, err := course.ParseDate(startDate)
				if err != nil {
					return err
				}
				raw.StartDate = &date
			}

			spinner := printer.Spin("")
			defer spinner.Stop()

			logger := initLogger(cfg.LogLevel)
			esClient, err := initElasticsearch(logger, cfg.Elasticsearch)
			if err != nil {
				return err
			}

			svc := newCourseService(logger, esClient, cfg.Dataset)
			res, err := svc.Search(cmd.Context(), raw.Normalize(logger))
			if err != nil {
				return err
			}

			spinner.Stop()
			if output == "json" {
				fmt.Println(term.Bluef(prettyPrint(res)))
				return nil
			}

			report := [][]string{{"ID", "TITLE", "CATEGORY", "TYPE", "AGES", "PRICE", "NEXT SESSION"}}
			for _, c := range res.Courses {
				report = append(report, []string{
					c.ID,
					term.Bluef(c.Title),
					c.Category,
					string(c.Type),
					fmt.Sprintf("%d-%d", c.MinAge, c.MaxAge),
					strconv.FormatFloat(c.Price, 'f', 2, 64),
					c.NextSessionDate.Format(time.RFC3339),
				})
			}
			printer.Table(os.Stdout, report)
			fmt.Println(term.Cyanf("page %d of %d, %d courses in total", res.Page+1, res.TotalPages, res.Total))

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "exact category, e.g. Science")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "course type: COURSE, CLUB or ONE_TIME")
	cmd.Flags().StringVarP(&sort, "sort", "s", "upcoming", "upcoming, priceAsc or priceDesc")
	cmd.Flags().StringVar(&startDate, "start-date", "", "only sessions on or after this date, e.g. 2025-09-01")
	cmd.Flags().IntVar(&minAge, "min-age", 0, "youngest age the course must accept")
	cmd.Flags().IntVar(&maxAge, "max-age", 0, "oldest age the course must accept")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "lowest price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "highest price")
	cmd.Flags().IntVar(&page, "page", course.DefaultPage, "page number (starts from 0)")
	cmd.Flags().IntVar(&size, "size", course.DefaultPageSize, "size of each page")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "flag to control output viewing, for json `-o json`")

	return cmd
}

func suggestCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Complete a course title",
		Example: heredoc.Doc(`
			$ coursefinder suggest rob
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := overrideConfigFromFlag(cmd, cfg); err != nil {
				return err
			}

			prefix := strings.TrimSpace(args[0])
			if utf8.RuneCountInString(prefix) < course.MinSuggestPrefixLength {
				return fmt.Errorf("prefix must be at least %d characters", course.MinSuggestPrefixLength)
			}

			spinner := printer.Spin("")
			defer spinner.Stop()

			logger := initLogger(cfg.LogLevel)
			esClient, err := initElasticsearch(logger, cfg.Elasticsearch)
			if err != nil {
				return err
			}

			suggestions := newCourseService(logger, esClient, cfg.Dataset).Suggest(cmd.Context(), prefix)

			spinner.Stop()
			if len(suggestions) == 0 {
				fmt.Println(term.Yellow("No suggestions"))
				return nil
			}
			for _, s := range suggestions {
				fmt.Println(term.Bluef(s))
			}
			return nil
		},
	}
}

func prettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}
