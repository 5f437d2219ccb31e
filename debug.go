package vroom

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and entity metrics.
// Only populated when debug mode is on.
type debugStats struct {
	updateTime time.Duration
	renderTime time.Duration
	ticks      int
	drawn      int
	entities   int
}

// SetDebugMode enables per-frame stats on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	if enabled {
		logDebug("layers: %d | step: %.4fs | prevent-default keys: %v",
			e.cfg.MaxLayers, e.step, e.cfg.PreventDefaultKeys)
	}
}

// debugLog prints timing and entity stats to stderr.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[vroom] update: %v (%d ticks) | render: %v | total: %v\n",
		stats.updateTime, stats.ticks, stats.renderTime, stats.updateTime+stats.renderTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[vroom] entities: %d | drawn: %d\n",
		stats.entities, stats.drawn)
}

func logDebug(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[vroom] "+format+"\n", args...)
}
