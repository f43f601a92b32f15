package session

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Janitor periodically evicts idle sessions from memory.
type Janitor struct {
	mgr       *Manager
	pollEvery time.Duration
}

func NewJanitor(mgr *Manager, pollEvery time.Duration) *Janitor {
	if pollEvery == 0 {
		pollEvery = time.Minute
	}
	return &Janitor{mgr: mgr, pollEvery: pollEvery}
}

// Run evicts idle sessions until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	log.Info().Dur("poll_every", j.pollEvery).Msg("session janitor: started")
	t := time.NewTicker(j.pollEvery)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("session janitor: stopping")
			return
		case <-t.C:
			if n := j.mgr.EvictIdle(); n > 0 {
				log.Debug().Int("evicted", n).Int("live", j.mgr.Len()).Msg("session janitor: evicted idle sessions")
			}
		}
	}
}
