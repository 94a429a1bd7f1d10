package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"beverage_store/internal/config"
	"beverage_store/internal/models"
)

// TickerService keeps a fresh stock-change snapshot for the live ticker.
// It polls on a jittered interval in a single goroutine, so a slow fetch
// simply absorbs the ticks that fire while it runs; polls are never
// queued. Stop tears the goroutine down deterministically.
type TickerService interface {
	Start()
	Stop()
	Snapshot() ([]models.StockChange, time.Time)
}

type tickerService struct {
	pricing  PricingService
	interval time.Duration
	jitter   time.Duration

	mu        sync.RWMutex
	changes   []models.StockChange
	updatedAt time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

func NewTickerService(pricing PricingService, interval, jitter time.Duration) TickerService {
	return &tickerService{
		pricing:  pricing,
		interval: interval,
		jitter:   jitter,
	}
}

func (s *tickerService) Start() {
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx)
}

func (s *tickerService) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
}

func (s *tickerService) run(ctx context.Context) {
	defer close(s.done)

	s.refresh(ctx)
	for {
		timer := time.NewTimer(s.nextInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.refresh(ctx)
		}
	}
}

func (s *tickerService) nextInterval() time.Duration {
	if s.jitter <= 0 {
		return s.interval
	}
	return s.interval + time.Duration(rand.Int63n(int64(s.jitter)))
}

// refresh replaces the snapshot on success and keeps the previous one on
// failure, so the ticker degrades to stale data rather than going blank.
func (s *tickerService) refresh(ctx context.Context) {
	changes, err := s.pricing.StockChanges(ctx)
	if err != nil {
		config.GetLogger().Warnf("ticker refresh failed: %v", err)
		return
	}

	s.mu.Lock()
	s.changes = changes
	s.updatedAt = time.Now()
	s.mu.Unlock()
}

func (s *tickerService) Snapshot() ([]models.StockChange, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changes, s.updatedAt
}
