package searcher

import (
	"shobu/game"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Entry is a memoised search result. HasMove is false for leaf evaluations.
type Entry struct {
	Score   float64
	Move    game.Move
	HasMove bool
}

// Transposition memoises search results by Zobrist key. Two positions that
// share a key share an entry: collisions are not detected.
type Transposition struct {
	entries map[uint64]Entry
	bounded *lru.Cache[uint64, Entry]
}

// NewTransposition returns an unbounded memo when capacity is zero, and a
// least-recently-used one holding at most capacity entries otherwise.
func NewTransposition(capacity int) *Transposition {
	if capacity <= 0 {
		return &Transposition{entries: make(map[uint64]Entry)}
	}
	cache, err := lru.New[uint64, Entry](capacity)
	if err != nil {
		panic(err)
	}
	return &Transposition{bounded: cache}
}

func (t *Transposition) Get(key uint64) (Entry, bool) {
	if t.bounded != nil {
		return t.bounded.Get(key)
	}
	e, ok := t.entries[key]
	return e, ok
}

func (t *Transposition) Put(key uint64, e Entry) {
	if t.bounded != nil {
		t.bounded.Add(key, e)
		return
	}
	t.entries[key] = e
}

func (t *Transposition) Len() int {
	if t.bounded != nil {
		return t.bounded.Len()
	}
	return len(t.entries)
}

func (t *Transposition) Clear() {
	if t.bounded != nil {
		t.bounded.Purge()
		return
	}
	clear(t.entries)
}
