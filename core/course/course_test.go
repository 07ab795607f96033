package course_test

import (
	"testing"
	"time"

	"github.com/goto/coursefinder/core/course"
	"github.com/stretchr/testify/assert"
)

func TestCourseTypeIsValid(t *testing.T) {
	for _, typ := range course.AllSupportedTypes {
		assert.True(t, typ.IsValid(), "%q should be valid", typ)
	}
	assert.False(t, course.CourseType("WORKSHOP").IsValid())
	assert.False(t, course.CourseType("").IsValid())
}

func TestParseCourseType(t *testing.T) {
	testCases := []struct {
		Token    string
		Expected course.CourseType
		OK       bool
	}{
		{Token: "ONE_TIME", Expected: course.TypeOneTime, OK: true},
		{Token: "course", Expected: course.TypeCourse, OK: true},
		{Token: " Club ", Expected: course.TypeClub, OK: true},
		{Token: "bogus", OK: false},
		{Token: "", OK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Token, func(t *testing.T) {
			typ, ok := course.ParseCourseType(tc.Token)
			assert.Equal(t, tc.OK, ok)
			assert.Equal(t, tc.Expected, typ)
		})
	}
}

func TestCourseWithSuggestions(t *testing.T) {
	t.Run("should derive completion entry from title", func(t *testing.T) {
		c := course.Course{ID: "1", Title: "Junior  Robotics Club"}

		got := c.WithSuggestions()

		assert.Equal(t, "Junior  Robotics Club", got.TitleSuggest)
		assert.Equal(t, &course.Completion{
			Input:  []string{"junior", "robotics", "club"},
			Output: "Junior  Robotics Club",
			Weight: 1,
		}, got.Suggest)
		assert.Nil(t, c.Suggest, "receiver should not be mutated")
	})

	t.Run("should drop a stale completion entry when title is empty", func(t *testing.T) {
		c := course.Course{ID: "1", Suggest: &course.Completion{Output: "old"}, TitleSuggest: "old"}

		got := c.WithSuggestions()

		assert.Nil(t, got.Suggest)
		assert.Empty(t, got.TitleSuggest)
	})

	t.Run("should recompute after title changes", func(t *testing.T) {
		c := course.Course{Title: "Art Camp"}.WithSuggestions()
		c.Title = "Pottery Basics"

		got := c.WithSuggestions()

		assert.Equal(t, "Pottery Basics", got.Suggest.Output)
		assert.Equal(t, []string{"pottery", "basics"}, got.Suggest.Input)
	})
}

func TestCourseView(t *testing.T) {
	next := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	c := course.Course{
		ID:              "7",
		Title:           "Chess Club",
		Description:     "Weekly chess",
		Category:        "Games",
		Type:            course.TypeClub,
		GradeRange:      "3rd-5th",
		MinAge:          8,
		MaxAge:          11,
		Price:           45.5,
		NextSessionDate: next,
	}.WithSuggestions()

	assert.Equal(t, course.View{
		ID:              "7",
		Title:           "Chess Club",
		Description:     "Weekly chess",
		Category:        "Games",
		Type:            course.TypeClub,
		GradeRange:      "3rd-5th",
		MinAge:          8,
		MaxAge:          11,
		Price:           45.5,
		NextSessionDate: next,
	}, c.View())
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		Value    string
		Expected time.Time
		Err      bool
	}{
		{Value: "2025-08-01T10:30:00", Expected: time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)},
		{Value: "2025-08-01T10:30:00.250", Expected: time.Date(2025, 8, 1, 10, 30, 0, 250000000, time.UTC)},
		{Value: "2025-08-01T10:30:00Z", Expected: time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)},
		{Value: "2025-08-01T10:30:00+07:00", Expected: time.Date(2025, 8, 1, 3, 30, 0, 0, time.UTC)},
		{Value: " 2025-08-01 ", Expected: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{Value: "01/08/2025", Err: true},
		{Value: "", Err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Value, func(t *testing.T) {
			got, err := course.ParseDate(tc.Value)
			if tc.Err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.Expected.Equal(got), "expected %s, got %s", tc.Expected, got)
		})
	}
}
