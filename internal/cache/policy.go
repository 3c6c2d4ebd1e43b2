package cache

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects which entry is discarded when a full cache receives a new key.
type Policy int

const (
	// Unbounded never evicts; capacity is ignored.
	Unbounded Policy = iota
	// FIFO discards the entry that has been resident the longest.
	// Updating a key keeps its original position.
	FIFO
	// LIFO discards the most recently written entry other than the incoming one.
	// Updating a key marks it as the most recent arrival.
	LIFO
)

// ErrUnknownPolicy is returned for policy names and values outside
// Unbounded, FIFO and LIFO.
var ErrUnknownPolicy = errors.New("unknown eviction policy")

func (p Policy) String() string {
	switch p {
	case Unbounded:
		return "basic"
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps a policy name to a Policy. "basic" and "unbounded" both
// name the Unbounded policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic", "unbounded":
		return Unbounded, nil
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

func (p Policy) MarshalText() ([]byte, error) {
	if p < Unbounded || p > LIFO {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Policy) bounded() bool {
	return p == FIFO || p == LIFO
}

// refreshesOnWrite reports whether re-putting a key moves it to the back of
// the arrival order.
func (p Policy) refreshesOnWrite() bool {
	return p == LIFO
}

// victim names the key the next new arrival at a full cache would discard,
// without removing it. It must be called before the incoming key is recorded.
func victim[K comparable](p Policy, t *arrivalTracker[K]) (K, bool) {
	switch p {
	case FIFO:
		return t.oldest()
	case LIFO:
		return t.newest()
	default:
		var zero K
		return zero, false
	}
}

// popVictim removes and returns the key victim would name.
func popVictim[K comparable](p Policy, t *arrivalTracker[K]) (K, bool) {
	switch p {
	case FIFO:
		return t.popFront()
	case LIFO:
		return t.popBack()
	default:
		var zero K
		return zero, false
	}
}
