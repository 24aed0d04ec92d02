package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/Fardankhan12/FurniroXFardan/internal/api/metrics"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher writes checkout attempt records to the journal off the
// request path. Attempts are sharded to a fixed set of workers by
// consistent hashing on the customer email, keeping per-customer ordering.
type Dispatcher struct {
	workers  []chan *domain.CheckoutAttempt
	attempts ports.AttemptRepository
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, attempts ports.AttemptRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan *domain.CheckoutAttempt, numWorkers),
		attempts: attempts,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.CheckoutAttempt, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an attempt to the worker responsible for its email.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(attempt *domain.CheckoutAttempt) {
	d.workers[d.shardIndex(attempt.Email)] <- attempt
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.CheckoutAttempt) {
	for {
		select {
		case <-ctx.Done():
			return
		case attempt, ok := <-ch:
			if !ok {
				return
			}
			// Journal failures never reach the shopper; the log line is
			// the fallback record.
			if err := d.attempts.Insert(ctx, attempt); err != nil {
				metrics.JournalWritesTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("attempt_id", attempt.ID).
					Int("worker_id", id).
					Msg("journal write failed")
				continue
			}
			metrics.JournalWritesTotal.WithLabelValues("ok").Inc()
		}
	}
}
