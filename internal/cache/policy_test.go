package cache

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{
		"basic":     Unbounded,
		"Unbounded": Unbounded,
		"FIFO":      FIFO,
		" lifo ":    LIFO,
	}
	for name, want := range cases {
		got, err := ParsePolicy(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParsePolicy("lru")
	require.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPolicy_JSONRoundTrip(t *testing.T) {
	var cfg struct {
		Policy Policy `json:"policy"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"policy":"lifo"}`), &cfg))
	require.Equal(t, LIFO, cfg.Policy)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.JSONEq(t, `{"policy":"lifo"}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"policy":"random"}`), &cfg))
}

func TestVictim(t *testing.T) {
	tr := newArrivalTracker[string](false)
	_, ok := victim(FIFO, tr)
	require.False(t, ok)

	tr.recordArrival("first")
	tr.recordArrival("last")

	v, ok := victim(FIFO, tr)
	require.True(t, ok)
	require.Equal(t, "first", v)
	v, ok = victim(LIFO, tr)
	require.True(t, ok)
	require.Equal(t, "last", v)
	_, ok = victim(Unbounded, tr)
	require.False(t, ok)
}

func TestPopVictim(t *testing.T) {
	tr := newArrivalTracker[string](false)
	for _, k := range []string{"A", "B", "C"} {
		tr.recordArrival(k)
	}

	v, ok := popVictim(FIFO, tr)
	require.True(t, ok)
	require.Equal(t, "A", v)
	v, ok = popVictim(LIFO, tr)
	require.True(t, ok)
	require.Equal(t, "C", v)
	_, ok = popVictim(Unbounded, tr)
	require.False(t, ok)
	require.Equal(t, []string{"B"}, tr.keys())
}

func TestParsePolicy_RejectsNone(t *testing.T) {
	_, err := ParsePolicy("none")
	require.ErrorIs(t, err, ErrUnknownPolicy)
}
