// Package notify delivers user-facing notifications ("item added",
// "quantity updated", …) without blocking the operation that produced them.
package notify

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/api/metrics"
	"github.com/furnishop/storefront/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Sink receives notifications from the dispatcher workers.
type Sink interface {
	Deliver(ctx context.Context, n ports.Notification)
}

// Dispatcher routes notifications to a fixed set of workers using
// consistent hashing on the user id, so one user's notifications keep
// their order.
type Dispatcher struct {
	workers []chan ports.Notification
	sink    Sink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers. If
// numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink Sink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Notification, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify enqueues a notification for the worker responsible for its user.
// When the worker's buffer is full the notification is dropped rather than
// blocking the caller.
func (d *Dispatcher) Notify(n ports.Notification) {
	idx := d.shardIndex(n.UserID)
	select {
	case d.workers[idx] <- n:
	default:
		d.log.Warn().Str("user_id", n.UserID).Str("event", n.Event).Msg("notification dropped, worker buffer full")
	}
	metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.sink.Deliver(ctx, n)
			metrics.NotificationsDeliveredTotal.Inc()
			metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
