package course

import (
	"strings"
	"time"

	"github.com/goto/salt/log"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 10
	MaxPageSize     = 100
)

const (
	SortUpcoming  SortType = "upcoming"
	SortPriceAsc  SortType = "priceAsc"
	SortPriceDesc SortType = "priceDesc"
)

// AllSortTypes holds a list of all supported sort modes
var AllSortTypes = []SortType{
	SortUpcoming,
	SortPriceAsc,
	SortPriceDesc,
}

// SortType is the ordering applied to search results
type SortType string

func (s SortType) String() string {
	return string(s)
}

// ParseSortType never fails: unknown or empty tokens resolve to SortUpcoming.
// Both the wire values (priceAsc) and the enum names (PRICE_ASC) are accepted.
func ParseSortType(token string) SortType {
	token = strings.TrimSpace(token)
	for _, s := range AllSortTypes {
		if strings.EqualFold(token, s.String()) || strings.EqualFold(token, s.enumName()) {
			return s
		}
	}
	return SortUpcoming
}

func (s SortType) enumName() string {
	switch s {
	case SortPriceAsc:
		return "PRICE_ASC"
	case SortPriceDesc:
		return "PRICE_DESC"
	default:
		return "UPCOMING"
	}
}

// SearchCriteria is the normalized set of filters for a single search.
// Nil pointers and empty strings mean the filter is absent.
type SearchCriteria struct {
	Text      string
	MinAge    *int
	MaxAge    *int
	Category  string
	Type      *CourseType
	MinPrice  *float64
	MaxPrice  *float64
	StartDate *time.Time
	Sort      SortType
	Page      int
	PageSize  int
}

// Offset is the index of the first hit of the requested page
func (c SearchCriteria) Offset() int {
	return c.Page * c.PageSize
}

func (c SearchCriteria) HasText() bool {
	return c.Text != ""
}

func (c SearchCriteria) HasAgeFilter() bool {
	return c.MinAge != nil || c.MaxAge != nil
}

func (c SearchCriteria) HasPriceFilter() bool {
	return c.MinPrice != nil || c.MaxPrice != nil
}

// RawCriteria carries the inbound search parameters before normalization.
// Enum-like fields are kept as the tokens the caller sent.
type RawCriteria struct {
	Text      string
	MinAge    *int
	MaxAge    *int
	Category  string
	Type      string
	MinPrice  *float64
	MaxPrice  *float64
	StartDate *time.Time
	Sort      string
	Page      *int
	PageSize  *int
}

// Normalize validates and defaults the raw parameters. It never fails:
// malformed optional values are dropped and reported through the logger.
func (r RawCriteria) Normalize(logger log.Logger) SearchCriteria {
	if logger == nil {
		logger = log.NewNoop()
	}

	c := SearchCriteria{
		Text:      strings.TrimSpace(r.Text),
		Category:  strings.TrimSpace(r.Category),
		StartDate: r.StartDate,
		Sort:      ParseSortType(r.Sort),
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
	}

	if token := strings.TrimSpace(r.Type); token != "" {
		if typ, ok := ParseCourseType(token); ok {
			c.Type = &typ
		} else {
			logger.Warn("invalid course type provided, ignoring filter", "type", token)
		}
	}

	c.MinAge = nonNegativeInt(logger, "minAge", r.MinAge)
	c.MaxAge = nonNegativeInt(logger, "maxAge", r.MaxAge)
	c.MinPrice = nonNegativeFloat(logger, "minPrice", r.MinPrice)
	c.MaxPrice = nonNegativeFloat(logger, "maxPrice", r.MaxPrice)

	if r.Page != nil && *r.Page > 0 {
		c.Page = *r.Page
	}
	if r.PageSize != nil && *r.PageSize > 0 {
		c.PageSize = *r.PageSize
	}
	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}

	return c
}

func nonNegativeInt(logger log.Logger, field string, v *int) *int {
	if v == nil {
		return nil
	}
	if *v < 0 {
		logger.Warn("negative value provided, ignoring filter", "field", field, "value", *v)
		return nil
	}
	val := *v
	return &val
}

func nonNegativeFloat(logger log.Logger, field string, v *float64) *float64 {
	if v == nil {
		return nil
	}
	if *v < 0 {
		logger.Warn("negative value provided, ignoring filter", "field", field, "value", *v)
		return nil
	}
	val := *v
	return &val
}
