package app

import (
	"dataplot/internal/debug/timing"
	"dataplot/internal/gui"
	"dataplot/internal/logger"
)

type Lifecycle struct {
	guiManager *gui.Manager
	timing     *timing.Tracker
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, tracker *timing.Tracker, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		timing:     tracker,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.timing != nil {
		for _, op := range l.timing.Operations() {
			l.logger.Debug("Lifecycle", "operation timings", map[string]interface{}{
				"operation": op,
				"count":     len(l.timing.GetTimings(op)),
				"average":   l.timing.GetAverageTime(op).String(),
			})
		}
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
