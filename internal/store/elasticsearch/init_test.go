package elasticsearch_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/elastic/go-elasticsearch/v7"
	store "github.com/goto/coursefinder/internal/store/elasticsearch"
	"github.com/goto/coursefinder/internal/store/elasticsearch/testutil"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/require"
)

const testIndex = "courses-test"

var esTestServer *testutil.ElasticsearchTestServer

func TestMain(m *testing.M) {
	var err error
	esTestServer, err = testutil.NewElasticsearchTestServer()
	if err != nil {
		// query composition tests do not need a server
		fmt.Println("elasticsearch integration tests disabled:", err)
		esTestServer = nil
	}

	exitCode := m.Run()

	if esTestServer != nil {
		if err := esTestServer.Close(); err != nil {
			fmt.Println("Error closing elasticsearch test server:", err)
		}
	}
	os.Exit(exitCode)
}

// newTestClient returns a migrated client on a purged server, or skips the test.
func newTestClient(t *testing.T) (*store.Client, *elasticsearch.Client) {
	t.Helper()
	if esTestServer == nil {
		t.Skip("elasticsearch test server unavailable")
	}

	cli, err := esTestServer.NewClient()
	require.NoError(t, err)
	esClient, err := store.NewClient(
		log.NewNoop(),
		store.Config{Index: testIndex},
		store.WithClient(cli),
	)
	require.NoError(t, err)

	return esClient, cli
}
