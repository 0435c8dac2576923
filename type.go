package timedmap

// Pair is a key with its value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Comparator orders two entries for Sort: negative when a sorts before b,
// zero when equal, positive otherwise.
type Comparator[K comparable, V any] func(a, b V, ka, kb K) int

// Source seeds a new map. Implemented by Record, Pair, Pairs and *Map.
type Source[K comparable, V any] interface {
	mergeInto(dst *Map[K, V])
}

// Record is a plain Go map used as a seed. Its keys are added in Go map
// iteration order.
type Record[K comparable, V any] map[K]V

// Pairs is an ordered list of seed pairs.
type Pairs[K comparable, V any] []Pair[K, V]

func (r Record[K, V]) mergeInto(dst *Map[K, V]) {
	for k, v := range r {
		dst.Ensure(k, v)
	}
}

func (p Pair[K, V]) mergeInto(dst *Map[K, V]) {
	dst.Ensure(p.Key, p.Value)
}

func (ps Pairs[K, V]) mergeInto(dst *Map[K, V]) {
	for _, p := range ps {
		dst.Ensure(p.Key, p.Value)
	}
}

func (m *Map[K, V]) mergeInto(dst *Map[K, V]) {
	dst.Concat(m)
}

// mergeMode says how a copied entry meets an existing destination key.
type mergeMode uint8

const (
	// mergeOverwrite replaces the destination value.
	mergeOverwrite mergeMode = iota
	// mergeEnsure keeps the destination value, only absent keys are filled.
	mergeEnsure
	// mergeRestore writes like mergeOverwrite into a map being rebuilt from
	// its own entries, leaving the capacity tracker's usage history alone.
	mergeRestore
)
