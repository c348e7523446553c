package audit

import (
	"context"
	"sync"
)

// Ring guarda os últimos eventos para a consulta do admin.
type Ring struct {
	mu     sync.Mutex
	events []Event
	next   int
	full   bool
}

func NewRing(size int) *Ring {
	if size <= 0 {
		size = 200
	}
	return &Ring{events: make([]Event, size)}
}

func (r *Ring) Write(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[r.next] = ev
	r.next = (r.next + 1) % len(r.events)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// Recent devolve até limit eventos, do mais novo para o mais antigo.
func (r *Ring) Recent(limit int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.next
	if r.full {
		n = len(r.events)
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]Event, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (r.next - 1 - i + len(r.events)) % len(r.events)
		out = append(out, r.events[idx])
	}
	return out
}
