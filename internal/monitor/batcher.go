package monitor

import (
	"sync"
	"time"

	"github.com/softpedal/lanebot/internal/bot"
)

// Batcher coalesces actions so broadcasting happens once per flush, not once
// per frame. A fast loop can emit hundreds of actions per second; clients
// get them in short bursts instead.
type Batcher struct {
	maxSize    int
	flushDelay time.Duration
	flush      func([]bot.Event)

	mu    sync.Mutex
	items []bot.Event
	timer *time.Timer
	wg    sync.WaitGroup
}

// NewBatcher creates a batcher that hands full batches to flush.
func NewBatcher(maxSize int, flushDelay time.Duration, flush func([]bot.Event)) *Batcher {
	if maxSize <= 0 {
		maxSize = DefaultBatchSize
	}
	if flushDelay <= 0 {
		flushDelay = DefaultFlushDelay
	}
	return &Batcher{
		maxSize:    maxSize,
		flushDelay: flushDelay,
		flush:      flush,
		items:      make([]bot.Event, 0, maxSize),
	}
}

// Add queues an event for batched delivery.
func (b *Batcher) Add(evt bot.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = append(b.items, evt)

	if len(b.items) >= b.maxSize {
		b.flushLocked()
		return
	}

	// Start or reset timer for delayed flush
	if b.timer == nil {
		b.timer = time.AfterFunc(b.flushDelay, b.timerFlush)
	} else {
		b.timer.Reset(b.flushDelay)
	}
}

func (b *Batcher) timerFlush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushLocked()
}

func (b *Batcher) flushLocked() {
	if len(b.items) == 0 {
		return
	}
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	items := b.items
	b.items = make([]bot.Event, 0, b.maxSize)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.flush(items)
	}()
}

// Flush forces immediate delivery of pending events.
func (b *Batcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushLocked()
}

// Stop flushes remaining events and waits for delivery.
func (b *Batcher) Stop() {
	b.Flush()
	b.wg.Wait()
}
