package quote

import (
	"fmt"
	"io"
	"time"

	"github.com/mariechen/ticked/internal/domain"
)

// FetchEvent records metadata about a single quote fetch.
type FetchEvent struct {
	Tone      domain.Tone
	Source    string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about quote fetches for logging and metrics.
type Observer interface {
	OnFetchComplete(event FetchEvent)
}

// LogObserver writes fetch events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnFetchComplete(event FetchEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] quote_fetch tone=%s source=%s latency_ms=%d status=%s\n",
		ts, event.Tone, event.Source, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(FetchEvent) {}
