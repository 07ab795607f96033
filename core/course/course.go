package course

import (
	"strings"
	"time"
)

const (
	TypeOneTime CourseType = "ONE_TIME"
	TypeCourse  CourseType = "COURSE"
	TypeClub    CourseType = "CLUB"
)

// AllSupportedTypes holds a list of all supported course types
var AllSupportedTypes = []CourseType{
	TypeOneTime,
	TypeCourse,
	TypeClub,
}

// suggestWeight is the completion weight given to every course title
const suggestWeight = 1

// CourseType specifies the kind of session a course runs as
type CourseType string

// String cast CourseType to string
func (t CourseType) String() string {
	return string(t)
}

// IsValid will validate whether the course type is one of the supported ones
func (t CourseType) IsValid() bool {
	switch t {
	case TypeOneTime, TypeCourse, TypeClub:
		return true
	}
	return false
}

// ParseCourseType matches the token case-insensitively against the
// supported types. ok is false when the token is not recognised.
func ParseCourseType(token string) (t CourseType, ok bool) {
	token = strings.TrimSpace(token)
	for _, typ := range AllSupportedTypes {
		if strings.EqualFold(token, typ.String()) {
			return typ, true
		}
	}
	return "", false
}

// Course is the document stored in the search index
type Course struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Type            CourseType `json:"type"`
	GradeRange      string     `json:"gradeRange"`
	MinAge          int        `json:"minAge"`
	MaxAge          int        `json:"maxAge"`
	Price           float64    `json:"price"`
	NextSessionDate time.Time  `json:"nextSessionDate"`

	// engine-internal autocomplete projections, see WithSuggestions
	TitleSuggest string      `json:"titleSuggest,omitempty"`
	Suggest      *Completion `json:"suggest,omitempty"`
}

// Completion is the payload of the completion suggester field.
// Output is kept for callers only, the engine rejects it in a completion input.
type Completion struct {
	Input  []string `json:"input"`
	Output string   `json:"-"`
	Weight int      `json:"weight"`
}

// WithSuggestions returns a copy of the course with its autocomplete
// projections recomputed from the title. A course without a title
// carries no completion entry.
func (c Course) WithSuggestions() Course {
	c.TitleSuggest = c.Title
	c.Suggest = nil
	if c.Title == "" {
		return c
	}

	c.Suggest = &Completion{
		Input:  strings.Fields(strings.ToLower(c.Title)),
		Output: c.Title,
		Weight: suggestWeight,
	}
	return c
}

// View is the outbound projection of a course, without the
// engine-internal suggestion fields
type View struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Type            CourseType `json:"type"`
	GradeRange      string     `json:"gradeRange"`
	MinAge          int        `json:"minAge"`
	MaxAge          int        `json:"maxAge"`
	Price           float64    `json:"price"`
	NextSessionDate time.Time  `json:"nextSessionDate"`
}

// View returns the outbound projection of the course
func (c Course) View() View {
	return View{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		Type:            c.Type,
		GradeRange:      c.GradeRange,
		MinAge:          c.MinAge,
		MaxAge:          c.MaxAge,
		Price:           c.Price,
		NextSessionDate: c.NextSessionDate,
	}
}
