// Package events типизированные доменные события сервиса.
// Сервисы не пишут метрики напрямую: они отправляют Event в Recorder,
// а реализация решает, куда его направить (лог, Prometheus, тестовый буфер).
package events

import (
	"context"
	"log/slog"
	"sync"

	"wedding_service/internal/metrics"
)

type Name string

const (
	UploadStarted     Name = "upload.started"
	UploadCompleted   Name = "upload.completed"
	UploadFailed      Name = "upload.failed"
	ModerationChanged Name = "moderation.changed"
	MediaDeleted      Name = "media.deleted"
	AuthDenied        Name = "auth.denied"
	WeddingCreated    Name = "wedding.created"
)

type Event struct {
	Name Name
	Slug string
	// Kind код ошибки для *.failed и auth.denied
	Kind  string
	Attrs []slog.Attr
}

type Recorder interface {
	Emit(ctx context.Context, e Event)
}

// LogRecorder пишет событие в slog и увеличивает счетчик metrics.Events.
type LogRecorder struct {
	log *slog.Logger
}

func NewLogRecorder(log *slog.Logger) *LogRecorder {
	return &LogRecorder{log: log.With(slog.String("component", "events"))}
}

func (r *LogRecorder) Emit(ctx context.Context, e Event) {
	metrics.Events.WithLabelValues(string(e.Name), e.Kind).Inc()

	attrs := make([]slog.Attr, 0, len(e.Attrs)+3)
	attrs = append(attrs, slog.String("event", string(e.Name)))
	if e.Slug != "" {
		attrs = append(attrs, slog.String("slug", e.Slug))
	}
	if e.Kind != "" {
		attrs = append(attrs, slog.String("kind", e.Kind))
	}
	attrs = append(attrs, e.Attrs...)

	level := slog.LevelInfo
	if e.Kind != "" {
		level = slog.LevelWarn
	}

	r.log.LogAttrs(ctx, level, "event", attrs...)
}

// MemoryRecorder копит события в памяти.
type MemoryRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *MemoryRecorder) Emit(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

func (r *MemoryRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Names имена событий в порядке отправки.
func (r *MemoryRecorder) Names() []Name {
	evs := r.Events()
	names := make([]Name, len(evs))
	for i, e := range evs {
		names[i] = e.Name
	}
	return names
}
