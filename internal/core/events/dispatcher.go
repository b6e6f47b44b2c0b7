// Package events provides the in-process domain event dispatcher and the
// handlers that keep derived aggregates consistent with the transaction
// ledger. Delivery is asynchronous and at-least-once; the transaction write
// is the durable source of truth and is never rolled back by a failed
// delivery.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/Habanerio/Xpnss-sub003/internal/middleware"
	"github.com/google/uuid"
)

// Handler consumes a TransactionCreated event. Handlers must tolerate seeing
// the same event more than once.
type Handler interface {
	// Name identifies the handler in logs.
	Name() string

	Handle(ctx context.Context, event domain.TransactionCreated) error
}

type delivery struct {
	deliveryID string
	event      domain.TransactionCreated
	// ctx carries request-scoped values (logger, user id) but is detached
	// from the publisher's cancellation: once the transaction has committed,
	// caller cancellation must not abort propagation.
	ctx context.Context
}

// Dispatcher routes domain events to registered handlers on a pool of worker
// goroutines. It is a stateless routing table constructed once at process
// start and passed explicitly to publishers; registration happens before
// Start and is not safe afterwards.
type Dispatcher struct {
	logger          *slog.Logger
	deliveries      chan delivery
	closeChan       chan struct{}
	workers         int
	deliveryTimeout time.Duration
	handlers        []Handler

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher with the given intake buffer size,
// worker count and per-delivery timeout.
func NewDispatcher(logger *slog.Logger, bufferSize, workers int, deliveryTimeout time.Duration) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		logger:          logger,
		deliveries:      make(chan delivery, bufferSize),
		closeChan:       make(chan struct{}),
		workers:         workers,
		deliveryTimeout: deliveryTimeout,
	}
}

// Register adds a handler. Must be called before Start.
func (d *Dispatcher) Register(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Start launches the worker goroutines.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	d.logger.Info("Event dispatcher started",
		slog.Int("workers", d.workers),
		slog.Int("handlers", len(d.handlers)))
}

// Publish enqueues an event for asynchronous delivery and returns once it has
// been accepted. It never waits on handlers. Publishing after Stop fails.
func (d *Dispatcher) Publish(ctx context.Context, event domain.TransactionCreated) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return fmt.Errorf("event dispatcher is stopped")
	}

	del := delivery{
		deliveryID: uuid.NewString(),
		event:      event,
		ctx:        context.WithoutCancel(ctx),
	}

	select {
	case d.deliveries <- del:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.closeChan:
		return fmt.Errorf("event dispatcher is stopped")
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case <-d.closeChan:
			// Drain what was accepted before shutdown.
			for {
				select {
				case del := <-d.deliveries:
					d.deliver(del)
				default:
					return
				}
			}
		case del := <-d.deliveries:
			d.deliver(del)
		}
	}
}

func (d *Dispatcher) deliver(del delivery) {
	ctx := del.ctx
	if d.deliveryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.deliveryTimeout)
		defer cancel()
	}

	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("delivery_id", del.deliveryID),
		slog.String("event", del.event.EventName()),
		slog.String("event_id", del.event.EventID),
		slog.String("transaction_id", del.event.TransactionID),
	)
	ctx = middleware.ContextWithLogger(ctx, logger)

	for _, h := range d.handlers {
		if err := h.Handle(ctx, del.event); err != nil {
			// Propagation errors are recorded, not retried; the committed
			// transaction stands regardless.
			logger.Error("Event handler failed",
				slog.String("handler", h.Name()),
				slog.String("error", err.Error()))
		}
	}
}

// Stop closes intake and waits for in-flight deliveries to finish, up to the
// context's deadline.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.closeChan)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Event dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
