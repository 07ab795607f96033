package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/integrations/nrelasticsearch-v7"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// name of the course index
	defaultCourseIndex = "courses"
)

type Config struct {
	Brokers        string        `yaml:"brokers" mapstructure:"brokers" default:"http://localhost:9200"`
	Index          string        `yaml:"index" mapstructure:"index" default:"courses"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout" default:"5s"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout" default:"10s"`
}

type searchHit struct {
	Index  string          `json:"_index"`
	ID     string          `json:"_id"`
	Source json.RawMessage `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
	Suggest map[string][]struct {
		Text    string `json:"text"`
		Offset  int    `json:"offset"`
		Length  int    `json:"length"`
		Options []struct {
			Text   string `json:"text"`
			ID     string `json:"_id"`
			Source struct {
				Title string `json:"title"`
			} `json:"_source"`
		} `json:"options"`
	} `json:"suggest"`
}

// extract error reason from an elasticsearch response
// returns the raw message in case it fails
func errorReasonFromResponse(res *esapi.Response) string {
	_, reason := errorCodeAndReason(res)
	return reason
}

// errorCodeAndReason extracts error.type and error.reason from an
// elasticsearch error response.
func errorCodeAndReason(res *esapi.Response) (code, reason string) {
	var (
		response struct {
			Error struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		}
		copy bytes.Buffer
	)
	reader := io.TeeReader(res.Body, &copy)
	if err := json.NewDecoder(reader).Decode(&response); err != nil || response.Error.Reason == "" {
		return "", fmt.Sprintf("status %d: raw response = %s", res.StatusCode, copy.String())
	}
	return response.Error.Type, response.Error.Reason
}

// drainBody drains and closes the response body so the underlying
// connection can be reused.
func drainBody(res *esapi.Response) {
	if res == nil || res.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}

// helper for decorating unsuccesful invocations of the es REST API
// (transport errors)
func elasticSearchError(err error) error {
	return fmt.Errorf("elasticsearch error: %w", err)
}

type Client struct {
	client *elasticsearch.Client
	logger log.Logger
	index  string

	opDurn metric.Float64Histogram
}

func NewClient(logger log.Logger, config Config, opts ...ClientOption) (*Client, error) {
	opDurn, err := otel.Meter("github.com/goto/coursefinder/internal/store/elasticsearch").
		Float64Histogram("coursefinder.es.operation.duration")
	if err != nil {
		otel.Handle(err)
	}

	if logger == nil {
		logger = log.NewNoop()
	}

	index := config.Index
	if index == "" {
		index = defaultCourseIndex
	}

	c := &Client{
		logger: logger,
		index:  index,
		opDurn: opDurn,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client != nil {
		return c, nil
	}

	brokers := strings.Split(config.Brokers, ",")
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: brokers,
		Transport: nrelasticsearch.NewRoundTripper(newTransport(config)),
		// uncomment below code to debug request and response to elasticsearch
		// Logger: &estransport.ColorLogger{
		//	Output:             os.Stdout,
		//	EnableRequestBody:  true,
		//	EnableResponseBody: true,
		// },
	})
	if err != nil {
		return nil, err
	}
	c.client = esClient

	return c, nil
}

func newTransport(config Config) http.RoundTripper {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if config.ConnectTimeout > 0 {
		tr.DialContext = (&net.Dialer{
			Timeout:   config.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext
	}
	if config.RequestTimeout > 0 {
		tr.ResponseHeaderTimeout = config.RequestTimeout
	}
	return tr
}

// Index returns the name of the course index
func (c *Client) Index() string {
	return c.index
}

func (c *Client) Init() (string, error) {
	res, err := c.client.Info()
	if err != nil {
		return "", err
	}
	defer drainBody(res)
	if res.IsError() {
		return "", errors.New(res.Status())
	}
	var info = struct {
		ClusterName string `json:"cluster_name"`
		Version     struct {
			Number string `json:"number"`
		} `json:"version"`
	}{}

	err = json.NewDecoder(res.Body).Decode(&info)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%q (server version %s)", info.ClusterName, info.Version.Number), nil
}

// Migrate creates the course index or updates the mapping of an existing one.
func (c *Client) Migrate(ctx context.Context) error {
	idxExists, err := c.indexExists(ctx, c.index)
	if err != nil {
		return fmt.Errorf("error checking index existence: %w", err)
	}

	if idxExists {
		c.logger.Info("index already exist, updating it instead", "index", c.index)
		if err = c.updateIdx(ctx); err != nil {
			return fmt.Errorf("error updating index: %w", err)
		}
		return nil
	}

	if err = c.createIdx(ctx); err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	c.logger.Info("created index", "index", c.index)
	return nil
}

func (c *Client) createIdx(ctx context.Context) error {
	res, err := c.client.Indices.Create(
		c.index,
		c.client.Indices.Create.WithBody(strings.NewReader(buildIndexSettings())),
		c.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return elasticSearchError(err)
	}
	defer drainBody(res)
	if res.IsError() {
		return fmt.Errorf("error creating index %q: %s", c.index, errorReasonFromResponse(res))
	}
	return nil
}

func (c *Client) updateIdx(ctx context.Context) error {
	res, err := c.client.Indices.PutMapping(
		strings.NewReader(courseIndexMapping),
		c.client.Indices.PutMapping.WithIndex(c.index),
		c.client.Indices.PutMapping.WithContext(ctx),
	)
	if err != nil {
		return elasticSearchError(err)
	}
	defer drainBody(res)
	if res.IsError() {
		return fmt.Errorf("error updating index %q: %s", c.index, errorReasonFromResponse(res))
	}
	return nil
}

// checks for the existence of an index
func (c *Client) indexExists(ctx context.Context, name string) (bool, error) {
	res, err := c.client.Indices.Exists(
		[]string{name},
		c.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, fmt.Errorf("indexExists: %w", elasticSearchError(err))
	}
	defer drainBody(res)
	return res.StatusCode == http.StatusOK, nil
}

type instrumentParams struct {
	op          string
	discoveryOp string
	start       time.Time
	err         error
}

func (c *Client) instrumentOp(ctx context.Context, p instrumentParams) {
	if c.opDurn == nil {
		return
	}

	ms := (float64)(time.Since(p.start)) / (float64)(time.Millisecond)
	c.opDurn.Record(ctx, ms, metric.WithAttributes(
		attribute.String("es.operation", p.op),
		attribute.String("es.index", c.index),
		attribute.String("coursefinder.discovery_operation", p.discoveryOp),
		attribute.Bool("operation.success", p.err == nil),
	))
}
