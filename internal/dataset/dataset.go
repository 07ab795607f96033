package dataset

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goto/coursefinder/core/course"
	"github.com/goto/salt/log"
)

//go:embed sample_courses.json
var sampleCourses []byte

type Config struct {
	// Path to a JSON array of courses, the bundled sample is used when empty
	Path             string `yaml:"path" mapstructure:"path"`
	BootstrapOnStart bool   `yaml:"bootstrap_on_start" mapstructure:"bootstrap_on_start" default:"true"`
}

// record is a course as written in the dataset file
type record struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Type            string  `json:"type"`
	GradeRange      string  `json:"gradeRange"`
	MinAge          int     `json:"minAge"`
	MaxAge          int     `json:"maxAge"`
	Price           float64 `json:"price"`
	NextSessionDate string  `json:"nextSessionDate"`
}

// Loader reads the bootstrap courses. It implements course.Dataset.
type Loader struct {
	path   string
	logger log.Logger
}

func New(cfg Config, logger log.Logger) *Loader {
	if logger == nil {
		logger = log.NewNoop()
	}
	return &Loader{
		path:   strings.TrimSpace(cfg.Path),
		logger: logger,
	}
}

// Load decodes the dataset. Records that cannot be turned into a course are
// logged and skipped, a malformed file fails the whole load.
func (l *Loader) Load(ctx context.Context) ([]course.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, source, err := l.read()
	if err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", source, err)
	}

	courses := make([]course.Course, 0, len(records))
	for i, r := range records {
		c, err := r.toCourse()
		if err != nil {
			l.logger.Warn("skipping dataset record", "source", source, "position", i, "id", r.ID, "err", err)
			continue
		}
		courses = append(courses, c)
	}
	l.logger.Debug("read dataset", "source", source, "records", len(records), "courses", len(courses))

	return courses, nil
}

func (l *Loader) read() ([]byte, string, error) {
	if l.path == "" {
		return sampleCourses, "embedded sample", nil
	}

	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, l.path, fmt.Errorf("read dataset: %w", err)
	}
	return raw, l.path, nil
}

func (r record) toCourse() (course.Course, error) {
	if strings.TrimSpace(r.ID) == "" {
		return course.Course{}, course.ErrEmptyID
	}

	typ, ok := course.ParseCourseType(r.Type)
	if !ok {
		return course.Course{}, fmt.Errorf("unknown course type %q", r.Type)
	}

	c := course.Course{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Type:        typ,
		GradeRange:  r.GradeRange,
		MinAge:      r.MinAge,
		MaxAge:      r.MaxAge,
		Price:       r.Price,
	}

	if r.NextSessionDate != "" {
		next, err := course.ParseDate(r.NextSessionDate)
		if err != nil {
			return course.Course{}, err
		}
		c.NextSessionDate = next
	}

	return c, nil
}
