package realtime

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/maramilod/alx-backend/internal/cache"

	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	messages [][]byte
	full     bool
}

func (f *fakeClient) Send(message []byte) bool {
	if f.full {
		return false
	}
	f.messages = append(f.messages, message)
	return true
}

func (f *fakeClient) Close() {}

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	h := NewHub()
	a, b, full := &fakeClient{}, &fakeClient{}, &fakeClient{full: true}
	h.Register("fifo", a)
	h.Register("fifo", full)
	h.Register("lifo", b)
	require.Equal(t, 2, h.Subscribers("fifo"))

	require.Equal(t, 1, h.Broadcast("fifo", []byte("hello")))
	require.Len(t, a.messages, 1)
	require.Empty(t, b.messages)

	h.Unregister("fifo", a)
	h.Unregister("fifo", full)
	require.Zero(t, h.Subscribers("fifo"))
	require.Zero(t, h.Broadcast("fifo", []byte("again")))
}

func TestEvictionPublisher_FromCache(t *testing.T) {
	h := NewHub()
	sub := &fakeClient{}
	h.Register("fifo", sub)

	c, err := cache.New(cache.Options[string, string]{
		Capacity:  1,
		Policy:    cache.FIFO,
		Notify:    &bytes.Buffer{},
		OnEvicted: EvictionPublisher(h, "fifo"),
	})
	require.NoError(t, err)

	c.Put("A", "1")
	c.Put("B", "2")

	require.Len(t, sub.messages, 1)
	var evt EvictionEvent
	require.NoError(t, json.Unmarshal(sub.messages[0], &evt))
	require.Equal(t, EvictionEvent{Type: "evicted", Cache: "fifo", Key: "A", Message: "DISCARD: A"}, evt)
}
