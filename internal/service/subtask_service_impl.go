package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/repository"
)

type subtaskService struct {
	subtasks repository.SubtaskRepo
	items    repository.ItemRepo
	now      func() time.Time
}

func NewSubtaskService(subtasks repository.SubtaskRepo, items repository.ItemRepo) SubtaskService {
	return &subtaskService{subtasks: subtasks, items: items, now: func() time.Time { return time.Now().UTC() }}
}

func (s *subtaskService) Add(ctx context.Context, ownerID, itemID, title string) (*domain.Subtask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}

	// Resolve the parent through the owner so one user cannot attach
	// subtasks to another user's item.
	item, err := s.items.GetByID(ctx, ownerID, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sub := &domain.Subtask{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		Title:     title,
		CreatedAt: s.now(),
	}
	if err := s.subtasks.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subtaskService) Toggle(ctx context.Context, ownerID, id string) error {
	sub, err := s.subtasks.GetByID(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	sub.Completed = !sub.Completed
	return s.subtasks.Update(ctx, sub)
}

func (s *subtaskService) Delete(ctx context.Context, ownerID, id string) error {
	return s.subtasks.Delete(ctx, ownerID, id)
}

func (s *subtaskService) ListByItem(ctx context.Context, ownerID, itemID string) ([]*domain.Subtask, error) {
	item, err := s.items.GetByID(ctx, ownerID, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.subtasks.ListByItem(ctx, item.ID)
}
