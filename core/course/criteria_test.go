package course_test

import (
	"testing"
	"time"

	"github.com/goto/coursefinder/core/course"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func typePtr(t course.CourseType) *course.CourseType { return &t }

func TestParseSortType(t *testing.T) {
	testCases := []struct {
		Token    string
		Expected course.SortType
	}{
		{Token: "", Expected: course.SortUpcoming},
		{Token: "upcoming", Expected: course.SortUpcoming},
		{Token: "priceAsc", Expected: course.SortPriceAsc},
		{Token: "PRICEDESC", Expected: course.SortPriceDesc},
		{Token: "PRICE_ASC", Expected: course.SortPriceAsc},
		{Token: "price_desc", Expected: course.SortPriceDesc},
		{Token: "xyz", Expected: course.SortUpcoming},
	}
	for _, tc := range testCases {
		t.Run(tc.Token, func(t *testing.T) {
			assert.Equal(t, tc.Expected, course.ParseSortType(tc.Token))
		})
	}

	assert.Equal(t, course.ParseSortType("upcoming"), course.ParseSortType("xyz"))
}

func TestRawCriteriaNormalize(t *testing.T) {
	startDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		Description string
		Raw         course.RawCriteria
		Expected    course.SearchCriteria
	}{
		{
			Description: "should apply defaults and leave filters absent",
			Raw:         course.RawCriteria{},
			Expected: course.SearchCriteria{
				Sort:     course.SortUpcoming,
				Page:     0,
				PageSize: 10,
			},
		},
		{
			Description: "should treat whitespace-only text as no text filter",
			Raw:         course.RawCriteria{Text: "   ", Category: "  "},
			Expected: course.SearchCriteria{
				Sort:     course.SortUpcoming,
				PageSize: 10,
			},
		},
		{
			Description: "should trim text and category",
			Raw:         course.RawCriteria{Text: "  robotics ", Category: " Science "},
			Expected: course.SearchCriteria{
				Text:     "robotics",
				Category: "Science",
				Sort:     course.SortUpcoming,
				PageSize: 10,
			},
		},
		{
			Description: "should drop an unrecognised course type without failing",
			Raw:         course.RawCriteria{Type: "bogus"},
			Expected: course.SearchCriteria{
				Sort:     course.SortUpcoming,
				PageSize: 10,
			},
		},
		{
			Description: "should parse course type case-insensitively",
			Raw:         course.RawCriteria{Type: "one_time"},
			Expected: course.SearchCriteria{
				Type:     typePtr(course.TypeOneTime),
				Sort:     course.SortUpcoming,
				PageSize: 10,
			},
		},
		{
			Description: "should fall back to upcoming for unknown sort",
			Raw:         course.RawCriteria{Sort: "xyz"},
			Expected: course.SearchCriteria{
				Sort:     course.SortUpcoming,
				PageSize: 10,
			},
		},
		{
			Description: "should keep every provided filter",
			Raw: course.RawCriteria{
				MinAge:    intPtr(6),
				MaxAge:    intPtr(9),
				MinPrice:  floatPtr(10),
				MaxPrice:  floatPtr(100),
				StartDate: &startDate,
				Sort:      "priceDesc",
				Page:      intPtr(2),
				PageSize:  intPtr(25),
			},
			Expected: course.SearchCriteria{
				MinAge:    intPtr(6),
				MaxAge:    intPtr(9),
				MinPrice:  floatPtr(10),
				MaxPrice:  floatPtr(100),
				StartDate: &startDate,
				Sort:      course.SortPriceDesc,
				Page:      2,
				PageSize:  25,
			},
		},
		{
			Description: "should keep zero valued filters as present",
			Raw:         course.RawCriteria{MinAge: intPtr(0), MinPrice: floatPtr(0)},
			Expected: course.SearchCriteria{
				MinAge:   intPtr(0),
				MinPrice: floatPtr(0),
				Sort:     course.SortUpcoming,
				PageSize: 10,
			},
		},
		{
			Description: "should drop negative ages and prices",
			Raw:         course.RawCriteria{MinAge: intPtr(-1), MaxAge: intPtr(-3), MinPrice: floatPtr(-0.5), MaxPrice: floatPtr(-10)},
			Expected: course.SearchCriteria{
				Sort:     course.SortUpcoming,
				PageSize: 10,
			},
		},
		{
			Description: "should clamp invalid pagination",
			Raw:         course.RawCriteria{Page: intPtr(-4), PageSize: intPtr(0)},
			Expected: course.SearchCriteria{
				Sort:     course.SortUpcoming,
				Page:     0,
				PageSize: 10,
			},
		},
		{
			Description: "should cap page size",
			Raw:         course.RawCriteria{PageSize: intPtr(5000)},
			Expected: course.SearchCriteria{
				Sort:     course.SortUpcoming,
				PageSize: course.MaxPageSize,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got := tc.Raw.Normalize(log.NewNoop())
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestRawCriteriaNormalizeCopiesValues(t *testing.T) {
	minAge := 5
	raw := course.RawCriteria{MinAge: &minAge}

	got := raw.Normalize(nil)
	minAge = 50

	assert.Equal(t, 5, *got.MinAge)
}

func TestSearchCriteriaOffset(t *testing.T) {
	assert.Equal(t, 0, course.SearchCriteria{Page: 0, PageSize: 10}.Offset())
	assert.Equal(t, 30, course.SearchCriteria{Page: 3, PageSize: 10}.Offset())
}
