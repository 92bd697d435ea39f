package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestObservedItemService_EmitsEvents(t *testing.T) {
	env := newTestEnv(t)
	rec := &recordingObserver{}
	svc := WithItemObservability(env.itemService(), rec)

	item, err := svc.Add(context.Background(), env.owner.ID, AddItemInput{Title: "observed"})
	require.NoError(t, err)
	require.NotNil(t, item)

	_, err = svc.Toggle(context.Background(), env.owner.ID, item.ID)
	require.NoError(t, err)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "item.add", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, "item.toggle", rec.events[1].Name)
}

func TestObservedItemService_RecordsFailures(t *testing.T) {
	env := newTestEnv(t)
	rec := &recordingObserver{}
	svc := WithItemObservability(env.itemService(), rec)

	// A closed database makes every store call fail.
	require.NoError(t, env.db.Close())

	_, err := svc.Add(context.Background(), env.owner.ID, AddItemInput{Title: "doomed"})
	require.Error(t, err)

	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
	assert.Equal(t, err, rec.events[0].Err)
}

func TestWithItemObservability_NilObserver(t *testing.T) {
	env := newTestEnv(t)
	inner := env.itemService()
	assert.Equal(t, inner, WithItemObservability(inner, nil))
}
