// Package tui is the terminal front end of the lookup tool.
//
// The bubbletea program owns a ui.Screen and renders it. User intents that reach the
// controller are queued on a Dispatcher and run one at a time on its worker goroutine;
// the controller's widget commands travel back to the program as messages.
package tui

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/nutrition-lookup/internal/logger"
	"github.com/rs/zerolog"
)

// DefaultQueueSize bounds the intents waiting behind the one running.
const DefaultQueueSize = 8

// Intent is one user action executed against the controller.
type Intent func(ctx context.Context)

// Submitter accepts intents for serial execution.
type Submitter interface {
	Submit(intent Intent) bool
}

// Dispatcher runs intents in submission order on a single worker goroutine.
// A new intent never starts before the previous one returned.
type Dispatcher struct {
	intents  chan Intent
	timeout  time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	log      zerolog.Logger
}

// NewDispatcher starts a dispatcher whose intents each run under timeout.
// A zero timeout leaves intents bounded only by Stop.
func NewDispatcher(timeout time.Duration, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		intents: make(chan Intent, queueSize),
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
		log:     logger.Component("dispatcher"),
	}
	go d.run()
	return d
}

// Submit queues intent. It reports false when the dispatcher is stopped or the queue is full.
func (d *Dispatcher) Submit(intent Intent) bool {
	if d.ctx.Err() != nil {
		return false
	}
	select {
	case d.intents <- intent:
		return true
	default:
		d.log.Warn().Int("queued", len(d.intents)).Msg("Intent queue full, dropping input")
		return false
	}
}

// Stop cancels the running intent, drops the queued ones and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(d.cancel)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for {
		select {
		case <-d.ctx.Done():
			return
		case intent := <-d.intents:
			d.execute(intent)
		}
	}
}

func (d *Dispatcher) execute(intent Intent) {
	ctx, cancel := d.ctx, context.CancelFunc(func() {})
	if d.timeout > 0 {
		ctx, cancel = context.WithTimeout(d.ctx, d.timeout)
	}
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Msg("Intent panicked")
		}
	}()

	intent(ctx)
}
