// Package leaderboard keeps the high-score list: (name, score) entries sorted
// by score descending and persisted as one JSON document.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Key is the storage key holding the serialized list.
const Key = "leaderboard"

// DefaultName replaces an empty player name.
const DefaultName = "Anonymous"

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// KV is the persistence the board needs.
// *storage.Store satisfies it.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Board is the leaderboard. Each call is a full load-modify-store cycle,
// serialized by a mutex so concurrent sessions cannot lose each other's
// entries.
type Board struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger
}

// New creates a board over kv. A nil logger discards output.
func New(kv KV, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{kv: kv, logger: logger}
}

// NormalizeName trims whitespace and substitutes DefaultName for empty input.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

// Load returns all entries, best first.
// Missing or unreadable data yields an empty board rather than an error.
func (b *Board) Load() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load()
}

// Record adds an entry and persists the re-sorted list.
// The returned slice is the updated board even when persisting fails.
func (b *Board) Record(name string, score int) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := append(b.load(), Entry{Name: NormalizeName(name), Score: score})
	sortEntries(entries)

	data, err := json.Marshal(entries)
	if err != nil {
		return entries, fmt.Errorf("leaderboard: cannot encode: %w", err)
	}
	if err := b.kv.Put(Key, data); err != nil {
		return entries, fmt.Errorf("leaderboard: cannot save: %w", err)
	}

	b.logger.Debug("score recorded", "name", name, "score", score, "entries", len(entries))
	return entries, nil
}

// Top returns at most n entries, best first. n <= 0 returns everything.
func (b *Board) Top(n int) []Entry {
	entries := b.Load()
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Best returns the highest score, or 0 for an empty board.
func (b *Board) Best() int {
	entries := b.Load()
	if len(entries) == 0 {
		return 0
	}
	return entries[0].Score
}

// Rank returns the 1-based position score would take if recorded now.
// Ties rank after existing entries with the same score.
func (b *Board) Rank(score int) int {
	rank := 1
	for _, e := range b.Load() {
		if e.Score >= score {
			rank++
		}
	}
	return rank
}

func (b *Board) load() []Entry {
	data, ok, err := b.kv.Get(Key)
	if err != nil {
		b.logger.Warn("leaderboard unavailable, starting empty", "err", err)
		return nil
	}
	if !ok {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		b.logger.Warn("leaderboard corrupt, starting empty", "err", err)
		return nil
	}
	sortEntries(entries)
	return entries
}

// sortEntries orders by score descending; ties keep their relative order.
func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
}
