package sweeper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kbryant/sendlater/internal/service"
	"go.uber.org/zap"
)

// Processor runs one sweep pass.
type Processor interface {
	Run(ctx context.Context) (service.SweepReport, error)
}

var (
	ErrAlreadyRunning = errors.New("sweeper already running")
	ErrNotRunning     = errors.New("sweeper not running")
)

// Sweeper drives periodic delivery passes on a ticker.
type Sweeper struct {
	processor Processor
	interval  time.Duration
	logger    *zap.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func New(processor Processor, interval time.Duration, logger *zap.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		processor: processor,
		interval:  interval,
		logger:    logger,
	}
}

// Start begins the background loop. The first pass runs immediately.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	go s.run(loopCtx)
	s.logger.Info("sweeper started", zap.Duration("interval", s.interval))

	return nil
}

// Stop cancels the loop.
func (s *Sweeper) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrNotRunning
	}

	s.cancel()
	s.running = false
	s.logger.Info("sweeper stopped")
	return nil
}

func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if _, err := s.processor.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logger.Error("sweep pass failed", zap.Error(err))
	}
}
