// internal/event/logger.go
package event

import "log"

// Logger пишет в журнал события, о которых хосту стоит знать:
// отказы в постройке, исчерпание пулов, утечки врагов.
type Logger struct {
	logger *log.Logger
}

// NewLogger; nil означает стандартный логгер пакета log.
func NewLogger(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{logger: l}
}

// LoggedEvents — события, на которые подписывается Logger в Attach.
var LoggedEvents = []EventType{PlacementRejected, PoolExhausted, EnemyEscaped, TurretPlaced}

// Attach подписывает логгер на LoggedEvents.
func (l *Logger) Attach(d *Dispatcher) {
	for _, t := range LoggedEvents {
		d.Subscribe(t, l)
	}
}

func (l *Logger) OnEvent(e Event) {
	switch data := e.Data.(type) {
	case PlacementData:
		if data.Err != nil {
			l.logger.Printf("[%8.0fms] %s at (%d, %d): %v", e.Time, e.Type, data.Row, data.Col, data.Err)
			return
		}
		l.logger.Printf("[%8.0fms] %s #%d at (%d, %d)", e.Time, e.Type, data.Turret, data.Row, data.Col)
	case PoolData:
		l.logger.Printf("[%8.0fms] %s: %s pool", e.Time, e.Type, data.Kind)
	default:
		l.logger.Printf("[%8.0fms] %s %v", e.Time, e.Type, e.Data)
	}
}
