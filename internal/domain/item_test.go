package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func TestNextDueDate_Daily(t *testing.T) {
	// Crosses the 2024 European DST boundary; the wall-clock hour must hold.
	i := &Item{
		DueAt:      timePtr(time.Date(2024, 3, 30, 8, 0, 0, 0, time.UTC)),
		Recurrence: RecurrenceDaily,
	}
	next := i.NextDueDate()
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC), *next)
}

func TestNextDueDate_Weekly(t *testing.T) {
	i := &Item{
		DueAt:      timePtr(time.Date(2024, 3, 30, 8, 0, 0, 0, time.UTC)),
		Recurrence: RecurrenceWeekly,
	}
	next := i.NextDueDate()
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2024, 4, 6, 8, 0, 0, 0, time.UTC), *next)
}

func TestNextDueDate_NoDueDate(t *testing.T) {
	i := &Item{Recurrence: RecurrenceDaily}
	assert.Nil(t, i.NextDueDate())
}

func TestNextDueDate_NoRecurrence(t *testing.T) {
	i := &Item{DueAt: timePtr(testNow), Recurrence: RecurrenceNone}
	assert.Nil(t, i.NextDueDate())
}

func TestRollForward_CopiesFieldsVerbatim(t *testing.T) {
	due := time.Date(2024, 3, 30, 8, 0, 0, 0, time.UTC)
	src := &Item{
		ID:          "src",
		OwnerID:     "owner",
		Title:       "Water plants",
		Description: "Back balcony too",
		DueAt:       &due,
		Priority:    PriorityHigh,
		Recurrence:  RecurrenceDaily,
		Category:    "home",
		Pinned:      true,
		Position:    4,
		Completed:   true,
		CompletedAt: timePtr(testNow),
	}

	draft := src.RollForward()
	require.NotNil(t, draft)
	assert.Empty(t, draft.ID, "draft should not inherit the source ID")
	assert.Equal(t, "owner", draft.OwnerID)
	assert.Equal(t, "Water plants", draft.Title)
	assert.Equal(t, "Back balcony too", draft.Description)
	assert.Equal(t, PriorityHigh, draft.Priority)
	assert.Equal(t, RecurrenceDaily, draft.Recurrence)
	assert.Equal(t, "home", draft.Category)
	assert.True(t, draft.Pinned)
	assert.Zero(t, draft.Position, "position is assigned by the caller")
	assert.False(t, draft.Completed)
	assert.Nil(t, draft.CompletedAt)
	require.NotNil(t, draft.DueAt)
	assert.Equal(t, due.AddDate(0, 0, 1), *draft.DueAt)
}

func TestRollForward_NoAnchor(t *testing.T) {
	assert.Nil(t, (&Item{Recurrence: RecurrenceDaily}).RollForward(),
		"no due date means no next occurrence")
	assert.Nil(t, (&Item{DueAt: timePtr(testNow), Recurrence: RecurrenceNone}).RollForward())
}

func TestSetCompleted_Invariant(t *testing.T) {
	i := &Item{}
	i.SetCompleted(true, testNow)
	assert.True(t, i.Completed)
	require.NotNil(t, i.CompletedAt)
	assert.Equal(t, testNow, *i.CompletedAt)

	i.SetCompleted(false, testNow.Add(time.Hour))
	assert.False(t, i.Completed)
	assert.Nil(t, i.CompletedAt)
}

func TestOverdue(t *testing.T) {
	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)
	cases := []struct {
		name    string
		item    Item
		overdue bool
	}{
		{"past due incomplete", Item{DueAt: &past}, true},
		{"past due completed", Item{DueAt: &past, Completed: true}, false},
		{"future due", Item{DueAt: &future}, false},
		{"no due date", Item{}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.overdue, tc.item.Overdue(testNow), tc.name)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	cases := []struct {
		hour int
		want TimeOfDay
	}{
		{3, TimeNight},
		{5, TimeMorning},
		{11, TimeMorning},
		{12, TimeAfternoon},
		{16, TimeAfternoon},
		{17, TimeEvening},
		{20, TimeEvening},
		{21, TimeNight},
		{23, TimeNight},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeOfDayAt(tc.hour), "hour=%d", tc.hour)
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Zero(t, Priority("BOGUS").Rank())
}
