package service

import (
	"log/slog"

	"github.com/ledger-statement-service/internal/config"
	"github.com/panjf2000/ants/v2"
)

// DispatchPool bounds the number of statement emails rendered and sent
// concurrently during a bulk dispatch.
type DispatchPool struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// NewDispatchPool creates a worker pool of the configured size.
func NewDispatchPool(logger *slog.Logger, cfg *config.DispatchPoolConfig) (*DispatchPool, error) {
	pool, err := ants.NewPool(cfg.Size)
	if err != nil {
		return nil, err
	}

	return &DispatchPool{
		pool:   pool,
		logger: logger,
	}, nil
}

// Submit hands a task to the pool, blocking until a worker is available.
func (p *DispatchPool) Submit(task func()) error {
	return p.pool.Submit(task)
}

// Shutdown releases the pool's workers.
func (p *DispatchPool) Shutdown() {
	p.logger.Info("Shutting down dispatch pool", "running_workers", p.pool.Running())
	p.pool.Release()
}

// Running returns the number of busy workers.
func (p *DispatchPool) Running() int {
	return p.pool.Running()
}

// Capacity returns the pool size.
func (p *DispatchPool) Capacity() int {
	return p.pool.Cap()
}
