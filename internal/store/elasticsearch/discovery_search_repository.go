package elasticsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goto/coursefinder/core/course"
)

// Search the course index
func (repo *DiscoveryRepository) Search(ctx context.Context, cfg course.SearchCriteria) (results course.SearchHits, err error) {
	const op = "Search"

	size := cfg.PageSize
	if size <= 0 {
		size = course.DefaultPageSize
	}
	from := cfg.Offset()
	if from < 0 {
		from = 0
	}

	defer func(start time.Time) {
		repo.cli.instrumentOp(ctx, instrumentParams{
			op:          "search",
			discoveryOp: op,
			start:       start,
			err:         err,
		})
	}(time.Now())

	body, err := buildSearchBody(cfg)
	if err != nil {
		return course.SearchHits{}, course.DiscoveryError{Op: op, Err: fmt.Errorf("build query: %w", err)}
	}

	search := repo.cli.client.Search
	res, err := search(
		search.WithBody(body),
		search.WithIndex(repo.cli.index),
		search.WithSize(size),
		search.WithFrom(from),
		search.WithTrackTotalHits(true),
		search.WithContext(ctx),
	)
	if err != nil {
		return course.SearchHits{}, course.DiscoveryError{Op: op, Index: repo.cli.index, Err: fmt.Errorf("execute search: %w", err)}
	}
	defer drainBody(res)
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return course.SearchHits{}, course.DiscoveryError{
			Op:     op,
			Index:  repo.cli.index,
			ESCode: code,
			Err:    fmt.Errorf("execute search: %s", reason),
		}
	}

	var response searchResponse
	if err = json.NewDecoder(res.Body).Decode(&response); err != nil {
		return course.SearchHits{}, course.DiscoveryError{Op: op, Err: fmt.Errorf("decode search response: %w", err)}
	}

	courses, err := toCourses(response.Hits.Hits)
	if err != nil {
		return course.SearchHits{}, course.DiscoveryError{Op: op, Err: err}
	}

	return course.SearchHits{
		Courses: courses,
		Total:   response.Hits.Total.Value,
	}, nil
}

// Suggest returns the titles of the courses whose completion entry starts with prefix,
// in engine order.
func (repo *DiscoveryRepository) Suggest(ctx context.Context, prefix string) (results []string, err error) {
	const op = "Suggest"

	defer func(start time.Time) {
		repo.cli.instrumentOp(ctx, instrumentParams{
			op:          "search",
			discoveryOp: op,
			start:       start,
			err:         err,
		})
	}(time.Now())

	query, err := buildSuggestQuery(prefix)
	if err != nil {
		return nil, course.DiscoveryError{Op: op, Err: fmt.Errorf("build query: %w", err)}
	}

	search := repo.cli.client.Search
	res, err := search(
		search.WithBody(query),
		search.WithIndex(repo.cli.index),
		search.WithSize(0),
		search.WithContext(ctx),
	)
	if err != nil {
		return nil, course.DiscoveryError{Op: op, Index: repo.cli.index, Err: fmt.Errorf("execute search: %w", err)}
	}
	defer drainBody(res)
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return nil, course.DiscoveryError{
			Op:     op,
			Index:  repo.cli.index,
			ESCode: code,
			Err:    fmt.Errorf("execute search: %s", reason),
		}
	}

	var response searchResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, course.DiscoveryError{Op: op, Err: fmt.Errorf("decode search response: %w", err)}
	}

	results, err = toSuggestions(response)
	if err != nil {
		return nil, course.DiscoveryError{Op: op, Err: fmt.Errorf("map response to suggestion: %w", err)}
	}

	return results, nil
}

func toCourses(hits []searchHit) ([]course.Course, error) {
	courses := make([]course.Course, 0, len(hits))
	for _, hit := range hits {
		var c course.Course
		if err := json.Unmarshal(hit.Source, &c); err != nil {
			return nil, fmt.Errorf("decode course %q: %w", hit.ID, err)
		}
		if c.ID == "" {
			c.ID = hit.ID
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func toSuggestions(response searchResponse) ([]string, error) {
	suggests, exists := response.Suggest[suggesterName]
	if !exists {
		return nil, errors.New("suggester key does not exist")
	}

	results := []string{}
	for _, s := range suggests {
		for _, option := range s.Options {
			if option.Source.Title == "" {
				continue
			}
			results = append(results, option.Source.Title)
		}
	}
	return results, nil
}
