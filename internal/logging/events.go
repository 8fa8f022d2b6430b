package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/depilcher/WWVillage/internal/village"
)

// EventsFile is the trace file name inside the trace directory.
const EventsFile = "events.jsonl"

// EventLogger appends simulation events to a JSONL file, one object per
// line. A nil *EventLogger accepts every call and does nothing.
type EventLogger struct {
	mu    sync.Mutex
	file  *os.File
	run   int64
	trace *slog.Logger
}

// NewEventLogger opens dir/events.jsonl for append when level is debug or
// trace. At info it returns nil and creates nothing.
func NewEventLogger(dir, level string) (*EventLogger, error) {
	if ParseLevel(level) > slog.LevelDebug {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create trace dir: %w", err)
	}

	path := filepath.Join(dir, EventsFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &EventLogger{file: f}, nil
}

// WithRun tags every following record with the run's seed, so traces of
// several runs appended to one file can be told apart.
func (el *EventLogger) WithRun(seed int64) *EventLogger {
	if el == nil {
		return nil
	}
	el.mu.Lock()
	el.run = seed
	el.mu.Unlock()
	return el
}

// Mirror also sends every event to logger at trace level.
func (el *EventLogger) Mirror(logger *slog.Logger) *EventLogger {
	if el == nil {
		return nil
	}
	el.mu.Lock()
	el.trace = logger
	el.mu.Unlock()
	return el
}

// Log writes fields as one JSONL line with "time" and "seed" added. The
// caller's map is not modified.
func (el *EventLogger) Log(fields map[string]any) {
	if el == nil {
		return
	}

	el.mu.Lock()
	defer el.mu.Unlock()

	if el.file == nil {
		return
	}

	entry := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		entry[k] = v
	}
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["seed"] = el.run

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = el.file.Write(append(data, '\n'))

	if el.trace != nil {
		attrs := make([]any, 0, 2*len(fields))
		for k, v := range fields {
			attrs = append(attrs, k, v)
		}
		el.trace.Log(context.Background(), LevelTrace, "event", attrs...)
	}
}

// Sink adapts the logger to a village.EventSink. A nil logger yields a nil
// sink, which switches event emission off entirely.
func (el *EventLogger) Sink() village.EventSink {
	if el == nil {
		return nil
	}
	return func(ev village.Event) {
		el.Log(ev.Fields())
	}
}

// Close closes the trace file. Later calls to Log are ignored.
func (el *EventLogger) Close() error {
	if el == nil {
		return nil
	}

	el.mu.Lock()
	defer el.mu.Unlock()

	if el.file == nil {
		return nil
	}
	err := el.file.Close()
	el.file = nil
	return err
}
