// Package scheduler advances order delivery statuses on a central cadence.
// A single ticker sweeps all orders instead of arming one timer per order,
// so thousands of open orders cost one goroutine.
package scheduler

import (
	"context"
	"sync"
	"time"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// DeliveryScheduler walks every order through the delivery lifecycle: an
// order sits in each stage for at least one interval, then the next sweep
// advances it one stage. Stages are never skipped and Delivered is final.
type DeliveryScheduler struct {
	orderRepo repositories.OrderRepositoryInterface
	interval  time.Duration
	clock     Clock
	logger    *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
	mutex  sync.Mutex
}

// NewDeliveryScheduler creates a scheduler sweeping at the given interval.
// A nil clock defaults to the system clock.
func NewDeliveryScheduler(orderRepo repositories.OrderRepositoryInterface, interval time.Duration, clock Clock, log *logger.Logger) *DeliveryScheduler {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &DeliveryScheduler{
		orderRepo: orderRepo,
		interval:  interval,
		clock:     clock,
		logger:    log.WithComponent("delivery_scheduler"),
	}
}

// Start launches the sweep loop. Calling Start on a running scheduler is a
// no-op.
func (s *DeliveryScheduler) Start(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.logger.Info("Delivery scheduler started", "interval", s.interval)

	go s.run(ctx)
}

// Stop halts the sweep loop and waits for it to exit
func (s *DeliveryScheduler) Stop() {
	s.mutex.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mutex.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("Delivery scheduler stopped")
}

func (s *DeliveryScheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep advances every order that has sat in a non-terminal stage for at
// least one interval. Exported so tests can drive the lifecycle with a fake
// clock instead of waiting on the ticker.
func (s *DeliveryScheduler) Sweep() {
	now := s.clock.Now()

	orders, err := s.orderRepo.GetAll()
	if err != nil {
		s.logger.Error("Sweep failed to list orders", "error", err)
		return
	}

	advanced := 0
	for _, order := range orders {
		if order.Status == models.StatusDelivered {
			continue
		}
		if now.Sub(order.StatusUpdatedAt) < s.interval {
			continue
		}

		status, moved, err := s.orderRepo.AdvanceStatus(order.ID, now)
		if err != nil {
			s.logger.Error("Failed to advance order", "order_id", order.ID, "error", err)
			continue
		}
		if moved {
			advanced++
			s.logger.Debug("Order advanced", "order_id", order.ID, "status", status)
		}
	}

	if advanced > 0 {
		s.logger.Info("Delivery sweep completed", "advanced", advanced)
	}
}
