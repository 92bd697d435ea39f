package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/repository"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

// observedItemService wraps an ItemService and reports every call to an
// observer.
type observedItemService struct {
	inner    ItemService
	observer UseCaseObserver
}

// WithItemObservability decorates svc so each use case emits a
// UseCaseEvent. A nil observer returns svc unchanged.
func WithItemObservability(svc ItemService, observer UseCaseObserver) ItemService {
	if observer == nil {
		return svc
	}
	return &observedItemService{inner: svc, observer: observer}
}

func (s *observedItemService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}

func (s *observedItemService) Add(ctx context.Context, ownerID string, in AddItemInput) (*domain.Item, error) {
	started := time.Now()
	item, err := s.inner.Add(ctx, ownerID, in)
	s.observe(ctx, "item.add", started, err, nil)
	return item, err
}

func (s *observedItemService) Update(ctx context.Context, ownerID string, in UpdateItemInput) error {
	started := time.Now()
	err := s.inner.Update(ctx, ownerID, in)
	s.observe(ctx, "item.update", started, err, map[string]any{"item_id": in.ID})
	return err
}

func (s *observedItemService) Delete(ctx context.Context, ownerID, id string) error {
	started := time.Now()
	err := s.inner.Delete(ctx, ownerID, id)
	s.observe(ctx, "item.delete", started, err, map[string]any{"item_id": id})
	return err
}

func (s *observedItemService) Toggle(ctx context.Context, ownerID, id string) (*domain.Item, error) {
	started := time.Now()
	item, err := s.inner.Toggle(ctx, ownerID, id)
	s.observe(ctx, "item.toggle", started, err, map[string]any{"item_id": id})
	return item, err
}

func (s *observedItemService) TogglePin(ctx context.Context, ownerID, id string) error {
	started := time.Now()
	err := s.inner.TogglePin(ctx, ownerID, id)
	s.observe(ctx, "item.toggle_pin", started, err, map[string]any{"item_id": id})
	return err
}

func (s *observedItemService) Move(ctx context.Context, ownerID, id string, dir domain.MoveDirection) error {
	started := time.Now()
	err := s.inner.Move(ctx, ownerID, id, dir)
	s.observe(ctx, "item.move", started, err, map[string]any{"item_id": id, "direction": string(dir)})
	return err
}

func (s *observedItemService) CompleteAll(ctx context.Context, ownerID string) error {
	started := time.Now()
	err := s.inner.CompleteAll(ctx, ownerID)
	s.observe(ctx, "item.complete_all", started, err, nil)
	return err
}

func (s *observedItemService) DeleteCompleted(ctx context.Context, ownerID string) error {
	started := time.Now()
	err := s.inner.DeleteCompleted(ctx, ownerID)
	s.observe(ctx, "item.delete_completed", started, err, nil)
	return err
}

func (s *observedItemService) GetByID(ctx context.Context, ownerID, id string) (*domain.Item, error) {
	return s.inner.GetByID(ctx, ownerID, id)
}

func (s *observedItemService) List(ctx context.Context, ownerID string, f repository.ItemFilter) ([]*domain.Item, error) {
	return s.inner.List(ctx, ownerID, f)
}

func (s *observedItemService) Categories(ctx context.Context, ownerID string) ([]string, error) {
	return s.inner.Categories(ctx, ownerID)
}
