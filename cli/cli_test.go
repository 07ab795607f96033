package cli_test

import (
	"context"
	"testing"

	"github.com/goto/coursefinder/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should register every command", func(t *testing.T) {
		root := cli.New(&cli.Config{})

		for _, path := range [][]string{
			{"server", "start"},
			{"server", "migrate"},
			{"config", "init"},
			{"config", "list"},
			{"index"},
			{"reindex"},
			{"search"},
			{"suggest"},
			{"version"},
		} {
			cmd, _, err := root.Find(path)
			require.NoError(t, err, path)
			assert.Equal(t, path[len(path)-1], cmd.Name())
		}
	})

	t.Run("should reject a short suggest prefix before connecting", func(t *testing.T) {
		root := cli.New(&cli.Config{})
		root.SetArgs([]string{"suggest", " r "})

		err := root.ExecuteContext(context.Background())

		assert.EqualError(t, err, "prefix must be at least 2 characters")
	})

	t.Run("should reject a malformed start date before connecting", func(t *testing.T) {
		root := cli.New(&cli.Config{})
		root.SetArgs([]string{"search", "--start-date", "01/08/2025"})

		err := root.ExecuteContext(context.Background())

		assert.Error(t, err)
	})
}
