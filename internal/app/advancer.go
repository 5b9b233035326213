package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
)

// Stepper is the part of the machine the advancer drives.
type Stepper interface {
	NextUnlessPaused() bool
	State() navigation.State
}

// StartAdvancer launches a background goroutine that calls Next at a fixed
// cadence while the presentation is not paused. It returns immediately; a
// non-positive interval disables it.
func StartAdvancer(ctx context.Context, m Stepper, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				advance(m, logger)
			}
		}
	}()
}

func advance(m Stepper, logger *slog.Logger) bool {
	changed := m.NextUnlessPaused()
	if changed {
		logger.Debug("auto-advanced", "slide", m.State().SlideID)
	}
	return changed
}
