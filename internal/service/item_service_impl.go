package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mariechen/ticked/internal/db"
	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/repository"
)

type itemService struct {
	items repository.ItemRepo
	uow   db.UnitOfWork
	now   func() time.Time
}

func NewItemService(items repository.ItemRepo, uow db.UnitOfWork) ItemService {
	return &itemService{items: items, uow: uow, now: func() time.Time { return time.Now().UTC() }}
}

func (s *itemService) Add(ctx context.Context, ownerID string, in AddItemInput) (*domain.Item, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, nil
	}

	priority := in.Priority
	if !domain.ValidPriorities[string(priority)] {
		priority = domain.PriorityMedium
	}
	recurrence := in.Recurrence
	if !domain.ValidRecurrences[string(recurrence)] {
		recurrence = domain.RecurrenceNone
	}

	now := s.now()
	item := &domain.Item{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		DueAt:       in.DueAt,
		Priority:    priority,
		Recurrence:  recurrence,
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)
		maxPos, err := txItems.MaxPosition(ctx, ownerID)
		if err != nil {
			return err
		}
		item.Position = maxPos + 1
		return txItems.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, ownerID string, in UpdateItemInput) error {
	title := strings.TrimSpace(in.Title)
	if in.ID == "" || title == "" {
		return nil
	}

	item, err := s.items.GetByID(ctx, ownerID, in.ID)
	if errors.Is(err, repository.ErrNotFound) {
		// Missing or someone else's item, nothing to update.
		return nil
	}
	if err != nil {
		return err
	}

	item.Title = title
	item.Description = strings.TrimSpace(in.Description)
	item.DueAt = in.DueAt
	if domain.ValidPriorities[string(in.Priority)] {
		item.Priority = in.Priority
	}
	if domain.ValidRecurrences[string(in.Recurrence)] {
		item.Recurrence = in.Recurrence
	}
	item.Category = strings.TrimSpace(in.Category)
	item.UpdatedAt = s.now()

	return s.items.Update(ctx, item)
}

func (s *itemService) Delete(ctx context.Context, ownerID, id string) error {
	return s.items.Delete(ctx, ownerID, id)
}

func (s *itemService) Toggle(ctx context.Context, ownerID, id string) (*domain.Item, error) {
	var toggled *domain.Item

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)

		item, err := txItems.GetByID(ctx, ownerID, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		now := s.now()
		completing := !item.Completed
		item.SetCompleted(completing, now)
		item.UpdatedAt = now
		if err := txItems.Update(ctx, item); err != nil {
			return err
		}
		toggled = item

		// Completing a recurring item schedules its next occurrence.
		if completing {
			if next := item.RollForward(); next != nil {
				maxPos, err := txItems.MaxPosition(ctx, ownerID)
				if err != nil {
					return err
				}
				next.ID = uuid.New().String()
				next.Position = maxPos + 1
				next.CreatedAt = now
				next.UpdatedAt = now
				if err := txItems.Create(ctx, next); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

func (s *itemService) TogglePin(ctx context.Context, ownerID, id string) error {
	item, err := s.items.GetByID(ctx, ownerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	item.Pinned = !item.Pinned
	item.UpdatedAt = s.now()
	return s.items.Update(ctx, item)
}

func (s *itemService) Move(ctx context.Context, ownerID, id string, dir domain.MoveDirection) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)

		item, err := txItems.GetByID(ctx, ownerID, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		neighbor, err := txItems.Neighbor(ctx, ownerID, item.Position, dir)
		if errors.Is(err, repository.ErrNotFound) {
			// Already at the edge.
			return nil
		}
		if err != nil {
			return err
		}

		if err := txItems.SetPosition(ctx, ownerID, item.ID, neighbor.Position); err != nil {
			return err
		}
		return txItems.SetPosition(ctx, ownerID, neighbor.ID, item.Position)
	})
}

func (s *itemService) CompleteAll(ctx context.Context, ownerID string) error {
	return s.items.CompleteAll(ctx, ownerID, s.now())
}

func (s *itemService) DeleteCompleted(ctx context.Context, ownerID string) error {
	return s.items.DeleteCompleted(ctx, ownerID)
}

func (s *itemService) GetByID(ctx context.Context, ownerID, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, ownerID, id)
}

func (s *itemService) List(ctx context.Context, ownerID string, f repository.ItemFilter) ([]*domain.Item, error) {
	return s.items.List(ctx, ownerID, f)
}

func (s *itemService) Categories(ctx context.Context, ownerID string) ([]string, error) {
	return s.items.Categories(ctx, ownerID)
}
