package service

import (
	"context"
	"time"

	"github.com/mariechen/ticked/internal/analytics"
	"github.com/mariechen/ticked/internal/repository"
)

type analyticsService struct {
	items repository.ItemRepo
}

func NewAnalyticsService(items repository.ItemRepo) AnalyticsService {
	return &analyticsService{items: items}
}

func (s *analyticsService) Compute(ctx context.Context, ownerID string, now time.Time) (*Summary, error) {
	counts, err := s.items.Counts(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}

	history, err := s.items.CompletedHistory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	histogram := analytics.WeeklyHistogram(history, now)
	return &Summary{
		Total:             counts.Total,
		Completed:         counts.Completed,
		Active:            counts.Total - counts.Completed,
		Overdue:           counts.Overdue,
		CompletedThisWeek: analytics.CompletedThisWeek(history, now),
		Streak:            analytics.Streak(history, now),
		Histogram:         histogram,
	}, nil
}

func (s *analyticsService) DueCalendar(ctx context.Context, ownerID string, year int, month time.Month, loc *time.Location) (*CalendarMonth, error) {
	monthStart := analytics.MonthStart(year, month, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	due, err := s.items.ListDueBetween(ctx, ownerID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(due))
	for _, item := range due {
		if item.DueAt != nil {
			times = append(times, *item.DueAt)
		}
	}

	return &CalendarMonth{
		Year:     year,
		Month:    month,
		Cells:    analytics.MonthCells(monthStart),
		DueByDay: analytics.CountByMonthDay(times, monthStart),
	}, nil
}
