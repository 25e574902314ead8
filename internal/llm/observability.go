package llm

import "log/slog"

// CallEvent records metadata about a single ask invocation.
type CallEvent struct {
	Endpoint  string
	LatencyMs int64
	Status    int
	Success   bool
	ErrorCode string
}

// Observer receives events about ask calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"endpoint", event.Endpoint,
		"latency_ms", event.LatencyMs,
		"status", event.Status,
	}
	if event.Success {
		o.logger.Info("ask_call", attrs...)
		return
	}
	o.logger.Warn("ask_call", append(attrs, "error_code", event.ErrorCode)...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
