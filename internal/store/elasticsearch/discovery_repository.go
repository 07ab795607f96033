package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goto/coursefinder/core/course"
	"github.com/goto/salt/log"
)

// DiscoveryRepository implements course.DiscoveryRepository
// with elasticsearch as the backing store.
type DiscoveryRepository struct {
	cli    *Client
	logger log.Logger
}

func NewDiscoveryRepository(cli *Client, logger log.Logger) *DiscoveryRepository {
	if logger == nil {
		logger = log.NewNoop()
	}
	return &DiscoveryRepository{
		cli:    cli,
		logger: logger,
	}
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		ID     string `json:"_id"`
		Status int    `json:"status"`
		Error  struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

// BulkUpsert writes all courses in a single bulk request. Any item level
// failure fails the whole call so that callers can fall back to Upsert.
func (repo *DiscoveryRepository) BulkUpsert(ctx context.Context, courses []course.Course) (err error) {
	const op = "BulkUpsert"
	if len(courses) == 0 {
		return nil
	}

	defer func(start time.Time) {
		repo.cli.instrumentOp(ctx, instrumentParams{
			op:          "bulk",
			discoveryOp: op,
			start:       start,
			err:         err,
		})
	}(time.Now())

	payload := bytes.NewBuffer(nil)
	for _, c := range courses {
		if c.ID == "" {
			return course.DiscoveryError{Op: op, Index: repo.cli.index, Err: course.ErrEmptyID}
		}
		if err := repo.writeUpsertEntry(payload, c); err != nil {
			return course.DiscoveryError{Op: op, ID: c.ID, Err: err}
		}
	}

	res, err := repo.cli.client.Bulk(
		payload,
		repo.cli.client.Bulk.WithIndex(repo.cli.index),
		repo.cli.client.Bulk.WithRefresh("true"),
		repo.cli.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return course.DiscoveryError{Op: op, Index: repo.cli.index, Err: elasticSearchError(err)}
	}
	defer drainBody(res)
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return course.DiscoveryError{Op: op, Index: repo.cli.index, ESCode: code, Err: errors.New(reason)}
	}

	var response bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return course.DiscoveryError{Op: op, Index: repo.cli.index, Err: fmt.Errorf("decode bulk response: %w", err)}
	}
	if response.Errors {
		return course.DiscoveryError{Op: op, Index: repo.cli.index, Err: bulkItemsError(response)}
	}

	return nil
}

func (repo *DiscoveryRepository) Upsert(ctx context.Context, c course.Course) (err error) {
	const op = "Upsert"
	if c.ID == "" {
		return course.ErrEmptyID
	}

	defer func(start time.Time) {
		repo.cli.instrumentOp(ctx, instrumentParams{
			op:          "index",
			discoveryOp: op,
			start:       start,
			err:         err,
		})
	}(time.Now())

	body, err := json.Marshal(c)
	if err != nil {
		return course.DiscoveryError{Op: op, ID: c.ID, Err: fmt.Errorf("error serialising course: %w", err)}
	}

	res, err := repo.cli.client.Index(
		repo.cli.index,
		bytes.NewReader(body),
		repo.cli.client.Index.WithDocumentID(c.ID),
		repo.cli.client.Index.WithRefresh("true"),
		repo.cli.client.Index.WithContext(ctx),
	)
	if err != nil {
		return course.DiscoveryError{Op: op, ID: c.ID, Index: repo.cli.index, Err: elasticSearchError(err)}
	}
	defer drainBody(res)
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return course.DiscoveryError{Op: op, ID: c.ID, Index: repo.cli.index, ESCode: code, Err: errors.New(reason)}
	}

	return nil
}

// DeleteAll removes every course document, leaving the index and its mapping in place.
func (repo *DiscoveryRepository) DeleteAll(ctx context.Context) (err error) {
	const op = "DeleteAll"

	defer func(start time.Time) {
		repo.cli.instrumentOp(ctx, instrumentParams{
			op:          "delete_by_query",
			discoveryOp: op,
			start:       start,
			err:         err,
		})
	}(time.Now())

	res, err := repo.cli.client.DeleteByQuery(
		[]string{repo.cli.index},
		strings.NewReader(`{"query":{"match_all":{}}}`),
		repo.cli.client.DeleteByQuery.WithRefresh(true),
		repo.cli.client.DeleteByQuery.WithConflicts("proceed"),
		repo.cli.client.DeleteByQuery.WithIgnoreUnavailable(true),
		repo.cli.client.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		return course.DiscoveryError{Op: op, Index: repo.cli.index, Err: elasticSearchError(err)}
	}
	defer drainBody(res)
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return course.DiscoveryError{Op: op, Index: repo.cli.index, ESCode: code, Err: errors.New(reason)}
	}

	var response struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&response); err == nil {
		repo.logger.Info("deleted courses", "index", repo.cli.index, "count", response.Deleted)
	}

	return nil
}

// Count returns the number of course documents. A missing index counts as empty.
func (repo *DiscoveryRepository) Count(ctx context.Context) (total int64, err error) {
	const op = "Count"

	defer func(start time.Time) {
		repo.cli.instrumentOp(ctx, instrumentParams{
			op:          "count",
			discoveryOp: op,
			start:       start,
			err:         err,
		})
	}(time.Now())

	res, err := repo.cli.client.Count(
		repo.cli.client.Count.WithIndex(repo.cli.index),
		repo.cli.client.Count.WithIgnoreUnavailable(true),
		repo.cli.client.Count.WithContext(ctx),
	)
	if err != nil {
		return 0, course.DiscoveryError{Op: op, Index: repo.cli.index, Err: elasticSearchError(err)}
	}
	defer drainBody(res)
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return 0, course.DiscoveryError{Op: op, Index: repo.cli.index, ESCode: code, Err: errors.New(reason)}
	}

	var response struct {
		Count int64 `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return 0, course.DiscoveryError{Op: op, Index: repo.cli.index, Err: fmt.Errorf("decode count response: %w", err)}
	}

	return response.Count, nil
}

func (repo *DiscoveryRepository) writeUpsertEntry(w io.Writer, c course.Course) error {
	action := map[string]interface{}{
		"index": map[string]interface{}{
			"_index": repo.cli.index,
			"_id":    c.ID,
		},
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(action); err != nil {
		return fmt.Errorf("error serialising bulk action: %w", err)
	}
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("error serialising course: %w", err)
	}
	return nil
}

func bulkItemsError(response bulkResponse) error {
	var (
		failed int
		first  string
	)
	for _, item := range response.Items {
		for _, result := range item {
			if result.Status < 300 {
				continue
			}
			failed++
			if first == "" {
				first = fmt.Sprintf("doc ID '%s': %s: %s", result.ID, result.Error.Type, result.Error.Reason)
			}
		}
	}
	return fmt.Errorf("%d of %d bulk items failed, first failure %s", failed, len(response.Items), first)
}
