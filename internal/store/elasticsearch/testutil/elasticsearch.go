package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	esRepository = "docker.elastic.co/elasticsearch/elasticsearch"
	esTag        = "7.17.9"
)

// ElasticsearchTestServer is a single node elasticsearch
// cluster running inside docker.
// use NewElasticsearchTestServer to instantiate the server
type ElasticsearchTestServer struct {
	url      *url.URL
	pool     *dockertest.Pool
	resource *dockertest.Resource
	client   *elasticsearch.Client
}

// NewElasticsearchTestServer runs a single node elasticsearch cluster in
// docker, exposing the REST API over a random ephemeral port.
// If the environment variable ES_TEST_SERVER_URL is set, it acts as
// a dumb proxy to it instead, which is how CI pipelines can reuse a
// running instance.
// Make sure to call server.Close() once you're done, otherwise the docker
// container may be left running in the background until it expires.
func NewElasticsearchTestServer() (*ElasticsearchTestServer, error) {
	var server ElasticsearchTestServer

	if esURL, ok := os.LookupEnv("ES_TEST_SERVER_URL"); ok {
		u, err := url.Parse(esURL)
		if err != nil {
			return nil, fmt.Errorf("error parsing elasticsearch url: %w", err)
		}
		server.url = u
	} else if err := server.runContainer(); err != nil {
		return nil, err
	}

	// wait for the elasticsearch server to come up
	if err := server.wait4Ready(2 * time.Minute); err != nil {
		_ = server.Close()
		return nil, fmt.Errorf("error checking elasticsearch status: %w", err)
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{server.url.String()},
	})
	if err != nil {
		_ = server.Close()
		return nil, fmt.Errorf("error creating elasticsearch client: %w", err)
	}
	server.client = client

	return &server, nil
}

func (srv *ElasticsearchTestServer) runContainer() error {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("new test ES: create dockertest pool: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return fmt.Errorf("new test ES: docker unavailable: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: esRepository,
		Tag:        esTag,
		Env: []string{
			"discovery.type=single-node",
			"xpack.security.enabled=false",
			"ES_JAVA_OPTS=-Xms512m -Xmx512m",
		},
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("new test ES: start resource: %w", err)
	}
	srv.pool = pool
	srv.resource = resource

	// Tell docker to hard kill the container in 10 minutes
	if err := resource.Expire(600); err != nil {
		return err
	}

	srv.url = &url.URL{
		Scheme: "http",
		Host:   resource.GetHostPort("9200/tcp"),
	}
	return nil
}

// NewClient returns an elasticsearch client for the test server
// Calling this method deletes every index on the server,
// effectively resetting it.
func (srv *ElasticsearchTestServer) NewClient() (*elasticsearch.Client, error) {
	if err := srv.purge(srv.client); err != nil {
		return nil, fmt.Errorf("error purging elasticsearch: %w", err)
	}
	return srv.client, nil
}

func (srv *ElasticsearchTestServer) Close() error {
	if srv.pool == nil || srv.resource == nil {
		return nil
	}
	return srv.pool.Purge(srv.resource)
}

func (srv *ElasticsearchTestServer) purge(cli *elasticsearch.Client) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("purge: %w", err)
		}
	}()
	res, err := cli.Indices.Delete(
		[]string{"_all"},
		cli.Indices.Delete.WithIgnoreUnavailable(true),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode > 299 {
		return fmt.Errorf("elasticsearch server returned status code %d", res.StatusCode)
	}
	return nil
}

func (srv *ElasticsearchTestServer) wait4Ready(timeout time.Duration) error {
	healthURL := srv.url.ResolveReference(&url.URL{Path: "/_cluster/health", RawQuery: "wait_for_status=yellow&timeout=1s"})
	check := func() error {
		res, err := http.Get(healthURL.String())
		if err != nil {
			return err
		}
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %s", res.Status)
		}
		return nil
	}

	if srv.pool != nil {
		srv.pool.MaxWait = timeout
		return srv.pool.Retry(check)
	}

	deadline := time.Now().Add(timeout)
	var err error
	for time.Now().Before(deadline) {
		if err = check(); err == nil {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("timed out after %s: %v", timeout, strings.TrimSpace(fmt.Sprint(err)))
}
