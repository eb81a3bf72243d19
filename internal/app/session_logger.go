package app

import (
	"log"

	"gold-miner/internal/event"
)

// SessionLogger writes session events to a logger.
type SessionLogger struct {
	logger     *log.Logger
	dispatcher *event.Dispatcher
}

func NewSessionLogger(logger *log.Logger) *SessionLogger {
	return &SessionLogger{logger: logger}
}

// Subscribe registers the logger for every session event.
func (l *SessionLogger) Subscribe(d *event.Dispatcher) {
	d.Subscribe(l, event.SessionStarted, event.SessionStopped, event.HookFired, event.MineralCaptured)
	l.dispatcher = d
}

// Close detaches the logger; later events are not written.
func (l *SessionLogger) Close() {
	if l.dispatcher != nil {
		l.dispatcher.Unsubscribe(l)
		l.dispatcher = nil
	}
}

func (l *SessionLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Capture:
		l.logger.Printf("captured %s #%d worth %d at (%.0f, %.0f), score %d", data.Kind, data.MineralID, data.Value, data.X, data.Y, data.Score)
	case event.Summary:
		l.logger.Printf("%s: score %d, %d minerals left", e.Type, data.Score, data.Remaining)
	default:
		l.logger.Println(e.Type)
	}
}
