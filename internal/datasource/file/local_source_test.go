package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(p, []byte("a,b\n1,2\n"), 0o600))

	rc, err := NewLocal(p).Open(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(b))
}

func TestLocalOpenErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := NewLocal(filepath.Join(dir, "missing.csv")).Open(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "wrapping must preserve os.ErrNotExist: %v", err)

	_, err = NewLocal(dir).Open(context.Background())
	assert.ErrorContains(t, err, "is a directory")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewLocal(filepath.Join(dir, "missing.csv")).Open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
