package listings

import (
	"context"
	"log"
	"time"
)

// DefaultJanitorInterval is how often expired rows are swept. Listings live
// for minutes, so one sweep a minute keeps the tables close to what the
// visibility predicate already pretends they contain.
const DefaultJanitorInterval = time.Minute

// StartJanitor runs the passive-eviction sweep in the background until ctx is
// cancelled. Sweep failures are logged and retried on the next tick; nothing
// else depends on the janitor being on time.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				evicted, err := s.EvictExpired(ctx, time.Now())
				if err != nil {
					log.Printf("janitor: evicting expired listings: %v", err)
					continue
				}
				if evicted > 0 {
					log.Printf("janitor: evicted %d expired listings", evicted)
				}
			}
		}
	}()
}
