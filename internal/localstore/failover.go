package localstore

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"alafaq/internal/domain"
)

// Failover serves from a primary store and falls back to a secondary when
// the primary errors. After a minute it probes the primary again.
type Failover struct {
	primary   domain.KeyValueStore
	fallback  domain.KeyValueStore
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck time.Time
}

func NewFailover(primary, fallback domain.KeyValueStore, logger *zerolog.Logger) *Failover {
	return &Failover{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (f *Failover) Get(ctx context.Context, key string) (string, bool, error) {
	if !f.isDown.Load() {
		val, ok, err := f.primary.Get(ctx, key)
		if err == nil {
			return val, ok, nil
		}
		f.markDown(err)
	}

	// Probe the primary again after the cooldown.
	if f.isDown.Load() && time.Since(f.lastCheck) > time.Minute {
		val, ok, err := f.primary.Get(ctx, key)
		if err == nil {
			f.isDown.Store(false)
			return val, ok, nil
		}
		f.lastCheck = time.Now()
	}

	return f.fallback.Get(ctx, key)
}

func (f *Failover) Set(ctx context.Context, key, value string) error {
	if !f.isDown.Load() {
		if err := f.primary.Set(ctx, key, value); err == nil {
			return nil
		} else {
			f.markDown(err)
		}
	}
	return f.fallback.Set(ctx, key, value)
}

func (f *Failover) Delete(ctx context.Context, key string) error {
	if !f.isDown.Load() {
		if err := f.primary.Delete(ctx, key); err == nil {
			return nil
		} else {
			f.markDown(err)
		}
	}
	return f.fallback.Delete(ctx, key)
}

func (f *Failover) markDown(err error) {
	f.logger.Error().Err(err).Msg("primary store failed, falling back")
	f.isDown.Store(true)
	f.lastCheck = time.Now()
}
