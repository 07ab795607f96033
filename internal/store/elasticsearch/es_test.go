package elasticsearch_test

import (
	"context"
	"encoding/json"
	"testing"

	store "github.com/goto/coursefinder/internal/store/elasticsearch"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("should default the index name", func(t *testing.T) {
		esClient, err := store.NewClient(nil, store.Config{Brokers: "http://localhost:9200"})
		require.NoError(t, err)
		assert.Equal(t, "courses", esClient.Index())
	})

	t.Run("should let options override the configured index", func(t *testing.T) {
		esClient, err := store.NewClient(log.NewNoop(), store.Config{Brokers: "http://localhost:9200", Index: "a"}, store.WithIndex("b"))
		require.NoError(t, err)
		assert.Equal(t, "b", esClient.Index())
	})
}

func TestClientMigrate(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the index with the course mapping", func(t *testing.T) {
		esClient, cli := newTestClient(t)

		_, err := esClient.Init()
		require.NoError(t, err)
		require.NoError(t, esClient.Migrate(ctx))

		res, err := cli.Indices.GetMapping(cli.Indices.GetMapping.WithIndex(testIndex))
		require.NoError(t, err)
		defer res.Body.Close()
		require.False(t, res.IsError(), res.String())

		var mapping map[string]struct {
			Mappings struct {
				Properties map[string]struct {
					Type string `json:"type"`
				} `json:"properties"`
			} `json:"mappings"`
		}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&mapping))

		props := mapping[testIndex].Mappings.Properties
		assert.Equal(t, "text", props["title"].Type)
		assert.Equal(t, "keyword", props["category"].Type)
		assert.Equal(t, "keyword", props["type"].Type)
		assert.Equal(t, "integer", props["minAge"].Type)
		assert.Equal(t, "double", props["price"].Type)
		assert.Equal(t, "date", props["nextSessionDate"].Type)
		assert.Equal(t, "search_as_you_type", props["titleSuggest"].Type)
		assert.Equal(t, "completion", props["suggest"].Type)
	})

	t.Run("should update an existing index instead of failing", func(t *testing.T) {
		esClient, _ := newTestClient(t)

		require.NoError(t, esClient.Migrate(ctx))
		assert.NoError(t, esClient.Migrate(ctx))
	})
}
