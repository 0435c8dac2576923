package timedmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format renders the entries accepted by filter (all when nil), each through
// formatter ("key: value" when nil), joined by sep.
func (m *Map[K, V]) Format(sep string, filter func(V, K) bool, formatter func(V, K) string) string {
	if formatter == nil {
		formatter = func(v V, k K) string {
			return fmt.Sprintf("%v: %v", k, v)
		}
	}

	parts := make([]string, 0, m.Len())

	for _, r := range m.snapshot() {
		if filter != nil && !filter(r.value, r.key) {
			continue
		}

		parts = append(parts, formatter(r.value, r.key))
	}

	return strings.Join(parts, sep)
}

func (m *Map[K, V]) String() string {
	return "{" + m.Format(", ", nil, nil) + "}"
}

// MarshalJSON encodes the map as an ordered array of [key, value] pairs.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	records := m.snapshot()

	pairs := make([][2]any, 0, len(records))
	for _, r := range records {
		pairs = append(pairs, [2]any{r.key, r.value})
	}

	b, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", m.opt.Name, err)
	}

	return b, nil
}

var (
	dumpHeader    = color.New(color.Bold)
	dumpKey       = color.New(color.FgCyan)
	dumpTTL       = color.New(color.FgYellow)
	dumpPermanent = color.New(color.FgGreen)
	dumpExpired   = color.New(color.FgRed)
)

// Dump writes one line per entry with the time left on its timer, for
// debugging. Timers are not refreshed.
func (m *Map[K, V]) Dump(w io.Writer) error {
	records := m.snapshotTimers(false)

	if _, err := dumpHeader.Fprintf(w, "%s (%d entries)\n", m.opt.Name, len(records)); err != nil {
		return err
	}

	for i, r := range records {
		if _, err := dumpKey.Fprintf(w, "%4d  %v", i, r.key); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, " = %v  ", r.value); err != nil {
			return err
		}

		var err error

		switch r.rem.state {
		case remainingLeft:
			_, err = dumpTTL.Fprintf(w, "ttl %s\n", r.rem.duration)
		case remainingExpired:
			_, err = dumpExpired.Fprintln(w, "expired")
		default:
			_, err = dumpPermanent.Fprintln(w, "permanent")
		}

		if err != nil {
			return err
		}
	}

	return nil
}
