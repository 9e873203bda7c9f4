package effects

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/brickbreak/internal/breakout"
)

// DefaultToastTTL is how long a toast stays visible.
const DefaultToastTTL = 3 * time.Second

// ToastKind selects the toast styling.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is a short-lived notification.
type Toast struct {
	Message string
	Kind    ToastKind
	Expires time.Time
}

// Toasts is a queue of notifications that expire on their own.
// Safe for concurrent use.
type Toasts struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []Toast
}

// NewToasts creates an empty queue. A nil clock uses time.Now.
func NewToasts(ttl time.Duration, now func() time.Time) *Toasts {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Toasts{ttl: ttl, now: now}
}

// Push adds a toast.
func (t *Toasts) Push(kind ToastKind, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, Toast{Message: msg, Kind: kind, Expires: t.now().Add(t.ttl)})
}

// Pushf adds a formatted toast.
func (t *Toasts) Pushf(kind ToastKind, format string, args ...any) {
	t.Push(kind, fmt.Sprintf(format, args...))
}

// Visible drops expired toasts and returns the rest, oldest first.
func (t *Toasts) Visible() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	live := t.items[:0]
	for _, item := range t.items {
		if now.Before(item.Expires) {
			live = append(live, item)
		}
	}
	t.items = live

	out := make([]Toast, len(live))
	copy(out, live)
	return out
}

// React announces the end of a round.
func (t *Toasts) React(ev breakout.Event) error {
	switch ev.Kind {
	case breakout.EventVictory:
		t.Push(ToastSuccess, "YOU WIN!")
	case breakout.EventGameOver:
		t.Push(ToastError, "GAME OVER!")
	}
	return nil
}

// AnnounceScore reports a recorded leaderboard entry.
func (t *Toasts) AnnounceScore(name string, score int) {
	t.Pushf(ToastInfo, "%s's final score: %d", name, score)
}
