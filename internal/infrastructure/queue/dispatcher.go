package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bizdata/business-api/internal/api/metrics"
	"github.com/bizdata/business-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	defaultBuffer  = 64
)

type job struct {
	msg  ports.EmailMessage
	done chan error
}

// Dispatcher routes outbound email to a fixed set of workers using
// consistent hashing on the recipient address, guaranteeing
// per-recipient delivery ordering. It wraps another EmailSender and
// satisfies ports.EmailSender itself, so callers stay synchronous.
type Dispatcher struct {
	workers []chan job
	sender  ports.EmailSender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// Non-positive values fall back to the defaults.
func NewDispatcher(numWorkers, buffer int, sender ports.EmailSender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Send enqueues the message on the recipient's worker and waits for the
// delivery result, so the caller observes the same error the underlying
// sender returned.
func (d *Dispatcher) Send(ctx context.Context, msg ports.EmailMessage) error {
	j := job{msg: msg, done: make(chan error, 1)}
	select {
	case d.workers[d.shardIndex(msg.To)] <- j:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-ch:
			if !ok {
				return
			}
			metrics.EmailQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			err := d.sender.Send(ctx, j.msg)
			if err != nil {
				d.log.Error().Err(err).
					Str("to", j.msg.To).
					Int("worker_id", id).
					Msg("email delivery failed")
			}
			j.done <- err
		}
	}
}
