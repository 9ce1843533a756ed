package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/companyscan"
	"github.com/fwojciec/companyscan/fs"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("reads a bare path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "saved.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>snapshot</html>"), 0644))

		got, err := fs.NewFetcher().Fetch(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "<html>snapshot</html>", got)
	})

	t.Run("strips a file:// prefix", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "saved.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>snapshot</html>"), 0644))

		got, err := fs.NewFetcher().Fetch(context.Background(), "file://"+path)

		require.NoError(t, err)
		assert.Equal(t, "<html>snapshot</html>", got)
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewFetcher().Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.html"))

		require.Error(t, err)
		assert.Equal(t, companyscan.ENOTFOUND, companyscan.ErrorCode(err))
	})
}
