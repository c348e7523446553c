package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Event struct {
	Actor    string    `json:"actor"`
	Role     string    `json:"role"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	Metadata any       `json:"metadata,omitempty"`
	At       time.Time `json:"at"`
}

type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	log   zerolog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(log zerolog.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, 100), // buffer seguro
		log:   log,
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Write(context.Background(), ev); err != nil {
				d.log.Error().Err(err).Str("action", ev.Action).Msg("audit error")
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close esvazia a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
