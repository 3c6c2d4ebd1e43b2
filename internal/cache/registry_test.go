package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry[string, string]()
	fifo, _ := newTestCache[string](t, FIFO, 2)
	lifo, _ := newTestCache[string](t, LIFO, 2)

	require.NoError(t, r.Register("lifo", lifo))
	require.NoError(t, r.Register("fifo", fifo))
	require.ErrorIs(t, r.Register("fifo", lifo), ErrDuplicateCache)

	got, err := r.Lookup("fifo")
	require.NoError(t, err)
	require.Same(t, fifo, got)

	_, err = r.Lookup("lru")
	require.ErrorIs(t, err, ErrUnknownCache)

	require.Equal(t, []string{"fifo", "lifo"}, r.Names())
}
