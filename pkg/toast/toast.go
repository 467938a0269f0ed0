// Package toast carries the transient outcome notifications shown after a
// submission completes.
package toast

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Kind classifies a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast is a transient, non-blocking notification.
type Toast struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Success builds a success toast stamped with the current time.
func Success(message string) Toast {
	return Toast{Kind: KindSuccess, Message: message, At: time.Now()}
}

// Error builds an error toast stamped with the current time.
func Error(message string) Toast {
	return Toast{Kind: KindError, Message: message, At: time.Now()}
}

// Notifier receives toasts as they are raised.
type Notifier interface {
	Notify(Toast)
}

// Func adapts a plain function to Notifier.
type Func func(Toast)

func (f Func) Notify(t Toast) {
	if f != nil {
		f(t)
	}
}

// Multi fans a toast out to every non-nil notifier.
func Multi(notifiers ...Notifier) Notifier {
	clean := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			clean = append(clean, n)
		}
	}
	return multi(clean)
}

type multi []Notifier

func (m multi) Notify(t Toast) {
	for _, n := range m {
		n.Notify(t)
	}
}

// Queue buffers toasts until a renderer drains them. It keeps at most limit
// entries, dropping the oldest first.
type Queue struct {
	mu    sync.Mutex
	items []Toast
	limit int
}

// DefaultQueueLimit bounds the number of undisplayed toasts per form.
const DefaultQueueLimit = 8

// NewQueue returns an empty queue. A non-positive limit uses DefaultQueueLimit.
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	return &Queue{limit: limit}
}

func (q *Queue) Notify(t Toast) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, t)
	if overflow := len(q.items) - q.limit; overflow > 0 {
		q.items = append([]Toast(nil), q.items[overflow:]...)
	}
}

// Drain returns and clears the pending toasts in arrival order.
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of pending toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// LogNotifier writes toasts to a zerolog logger.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Notify(t Toast) {
	event := n.Logger.Info()
	if t.Kind == KindError {
		event = n.Logger.Warn()
	}
	event.Str("toast", string(t.Kind)).Msg(t.Message)
}
