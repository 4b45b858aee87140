package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorage_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores files and keeps extensions", func(t *testing.T) {
		dir := t.TempDir()
		storage := NewDiskStorage(dir)

		paths, err := storage.Store(ctx, []Upload{
			{Name: "arte-final.pdf", Reader: strings.NewReader("pdf bytes")},
			{Name: "logo.png", Reader: strings.NewReader("png bytes")},
		})
		require.NoError(t, err)
		require.Len(t, paths, 2)

		assert.Equal(t, ".pdf", filepath.Ext(paths[0]))
		assert.Equal(t, ".png", filepath.Ext(paths[1]))

		content, err := os.ReadFile(paths[0])
		require.NoError(t, err)
		assert.Equal(t, "pdf bytes", string(content))
	})

	t.Run("Generated names never collide with originals", func(t *testing.T) {
		dir := t.TempDir()
		storage := NewDiskStorage(dir)

		paths, err := storage.Store(ctx, []Upload{
			{Name: "a.pdf", Reader: strings.NewReader("one")},
			{Name: "a.pdf", Reader: strings.NewReader("two")},
		})
		require.NoError(t, err)
		assert.NotEqual(t, paths[0], paths[1])
	})

	t.Run("No uploads returns no paths", func(t *testing.T) {
		storage := NewDiskStorage(t.TempDir())

		paths, err := storage.Store(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}
