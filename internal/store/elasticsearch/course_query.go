package elasticsearch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/goto/coursefinder/core/course"
	"github.com/olivere/elastic/v7"
)

const (
	suggesterName = "course-suggest"
	suggestField  = "suggest"
)

var textSearchFields = []string{"title^2", "description"}

// clause is a single condition of the composed bool query. Scored clauses
// go to must, everything else to filter.
type clause struct {
	query  elastic.Query
	scored bool
}

// clauseBuilder returns false when its criterion is absent.
type clauseBuilder func(cfg course.SearchCriteria) (clause, bool)

// evaluated in order, each independent of the others
var clauseBuilders = []clauseBuilder{
	textClause,
	categoryClause,
	typeClause,
	ageClause,
	priceClause,
	startDateClause,
}

func buildQuery(cfg course.SearchCriteria) elastic.Query {
	boolQuery := elastic.NewBoolQuery()
	added := 0
	for _, build := range clauseBuilders {
		c, ok := build(cfg)
		if !ok {
			continue
		}
		added++
		if c.scored {
			boolQuery.Must(c.query)
			continue
		}
		boolQuery.Filter(c.query)
	}

	if added == 0 {
		return elastic.NewMatchAllQuery()
	}
	return boolQuery
}

func textClause(cfg course.SearchCriteria) (clause, bool) {
	if !cfg.HasText() {
		return clause{}, false
	}
	q := elastic.NewMultiMatchQuery(cfg.Text, textSearchFields...).
		Type("best_fields").
		Operator("or").
		Fuzziness("AUTO")
	return clause{query: q, scored: true}, true
}

func categoryClause(cfg course.SearchCriteria) (clause, bool) {
	if cfg.Category == "" {
		return clause{}, false
	}
	return clause{query: elastic.NewTermQuery("category", cfg.Category)}, true
}

func typeClause(cfg course.SearchCriteria) (clause, bool) {
	if cfg.Type == nil {
		return clause{}, false
	}
	return clause{query: elastic.NewTermQuery("type", cfg.Type.String())}, true
}

// ageClause matches courses whose [minAge, maxAge] overlaps the requested range.
func ageClause(cfg course.SearchCriteria) (clause, bool) {
	if !cfg.HasAgeFilter() {
		return clause{}, false
	}
	ageQuery := elastic.NewBoolQuery()
	if cfg.MinAge != nil {
		ageQuery.Must(elastic.NewRangeQuery("maxAge").Gte(*cfg.MinAge))
	}
	if cfg.MaxAge != nil {
		ageQuery.Must(elastic.NewRangeQuery("minAge").Lte(*cfg.MaxAge))
	}
	return clause{query: ageQuery}, true
}

func priceClause(cfg course.SearchCriteria) (clause, bool) {
	if !cfg.HasPriceFilter() {
		return clause{}, false
	}
	q := elastic.NewRangeQuery("price")
	if cfg.MinPrice != nil {
		q.Gte(*cfg.MinPrice)
	}
	if cfg.MaxPrice != nil {
		q.Lte(*cfg.MaxPrice)
	}
	return clause{query: q}, true
}

func startDateClause(cfg course.SearchCriteria) (clause, bool) {
	if cfg.StartDate == nil {
		return clause{}, false
	}
	q := elastic.NewRangeQuery("nextSessionDate").Gte(cfg.StartDate.UTC().Format(time.RFC3339))
	return clause{query: q}, true
}

// buildSort always returns exactly one sort key, unknown sorts order by
// the next session.
func buildSort(sort course.SortType) elastic.Sorter {
	switch sort {
	case course.SortPriceAsc:
		return elastic.NewFieldSort("price").Asc()
	case course.SortPriceDesc:
		return elastic.NewFieldSort("price").Desc()
	default:
		return elastic.NewFieldSort("nextSessionDate").Asc()
	}
}

func buildSearchBody(cfg course.SearchCriteria) (io.Reader, error) {
	src, err := elastic.NewSearchSource().
		Query(buildQuery(cfg)).
		SortBy(buildSort(cfg.Sort)).
		TrackTotalHits(true).
		Source()
	if err != nil {
		return nil, fmt.Errorf("error building search source: %w", err)
	}

	return encodeBody(src)
}

func buildSuggestQuery(prefix string) (io.Reader, error) {
	suggester := elastic.NewCompletionSuggester(suggesterName).
		Field(suggestField).
		SkipDuplicates(true).
		Size(course.MaxSuggestions).
		Prefix(prefix)
	src, err := elastic.NewSearchSource().
		Suggester(suggester).
		FetchSourceIncludeExclude([]string{"title"}, nil).
		Source()
	if err != nil {
		return nil, fmt.Errorf("error building search source: %w", err)
	}

	return encodeBody(src)
}

func encodeBody(src interface{}) (io.Reader, error) {
	payload := new(bytes.Buffer)
	if err := json.NewEncoder(payload).Encode(src); err != nil {
		return nil, fmt.Errorf("error building reader: %w", err)
	}
	return payload, nil
}
