package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("Save then Get returns content", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "upload/ab/one.txt", strings.NewReader("hello")))

		rc, err := s.Get(ctx, "upload/ab/one.txt")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("Save overwrites", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "a.txt", strings.NewReader("first")))
		require.NoError(t, s.Save(ctx, "a.txt", strings.NewReader("second")))

		rc, err := s.Get(ctx, "a.txt")
		require.NoError(t, err)
		defer rc.Close()
		data, _ := io.ReadAll(rc)
		assert.Equal(t, "second", string(data))
	})

	t.Run("Get missing object", func(t *testing.T) {
		_, err := s.Get(ctx, "nope/missing.txt")
		assert.True(t, errors.Is(err, ErrNotExist))
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "del.txt", strings.NewReader("x")))
		require.NoError(t, s.Delete(ctx, "del.txt"))
		require.NoError(t, s.Delete(ctx, "del.txt"))

		_, err := s.Get(ctx, "del.txt")
		assert.True(t, errors.Is(err, ErrNotExist))
	})

	t.Run("Rejects paths escaping the base directory", func(t *testing.T) {
		assert.Error(t, s.Save(ctx, "../escape.txt", strings.NewReader("x")))
		assert.Error(t, s.Save(ctx, "/etc/passwd", strings.NewReader("x")))
		_, err := s.Get(ctx, "a/../../b")
		assert.Error(t, err)
	})
}
