package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/quote"
	"github.com/mariechen/ticked/internal/testutil"
)

// stubProvider records the tone it was asked for and echoes a canned quote.
type stubProvider struct {
	lastTone domain.Tone
}

func (p *stubProvider) Fetch(_ context.Context, tone domain.Tone) quote.Result {
	p.lastTone = tone
	return quote.Result{
		Quote:     quote.Quote{Text: "canned wisdom", Author: "Stub"},
		Tone:      tone,
		Source:    quote.SourceFallback,
		FetchedAt: time.Now().UTC(),
	}
}

func TestQuoteService_Daily_ToneSelection(t *testing.T) {
	morning := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 15, 19, 0, 0, 0, time.UTC)
	night := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		now         time.Time
		completeAll bool
		want        domain.Tone
	}{
		{"morning with open items", morning, false, domain.ToneMotivational},
		{"evening with open items", evening, false, domain.ToneReflective},
		{"night with open items", night, false, domain.ToneReflective},
		{"all done in the morning", morning, true, domain.ToneCelebratory},
		{"all done at night", night, true, domain.ToneCelebratory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			provider := &stubProvider{}
			svc := NewQuoteService(provider, env.favorites, env.items, env.uow)

			if tt.completeAll {
				env.seedItem(t, env.owner.ID, "done", testutil.WithCompletedAt(tt.now))
			} else {
				env.seedItem(t, env.owner.ID, "open")
			}

			res, err := svc.Daily(context.Background(), env.owner.ID, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, provider.lastTone)
			assert.Equal(t, tt.want, res.Tone)
			assert.NotEmpty(t, res.Text)
		})
	}
}

func TestQuoteService_Daily_EmptyListIsNotCelebratory(t *testing.T) {
	env := newTestEnv(t)
	provider := &stubProvider{}
	svc := NewQuoteService(provider, env.favorites, env.items, env.uow)

	morning := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	_, err := svc.Daily(context.Background(), env.owner.ID, morning)
	require.NoError(t, err)
	assert.Equal(t, domain.ToneMotivational, provider.lastTone)
}

func TestQuoteService_Favorite_DeduplicatesQuoteAuthorPair(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuoteService(&stubProvider{}, env.favorites, env.items, env.uow)

	res := quote.Result{
		Quote:  quote.Quote{Text: "Stay curious.", Author: "Ada"},
		Tone:   domain.ToneMotivational,
		Source: quote.SourceZenQuotes,
	}

	require.NoError(t, svc.Favorite(context.Background(), env.owner.ID, res))
	require.NoError(t, svc.Favorite(context.Background(), env.owner.ID, res))

	favs, err := svc.ListFavorites(context.Background(), env.owner.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Stay curious.", favs[0].Quote)
	assert.Equal(t, "Ada", favs[0].Author)
	assert.Equal(t, quote.SourceZenQuotes, favs[0].Source)
}

func TestQuoteService_Favorite_SameTextDifferentAuthor(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuoteService(&stubProvider{}, env.favorites, env.items, env.uow)

	base := quote.Quote{Text: "Less, but better."}
	require.NoError(t, svc.Favorite(context.Background(), env.owner.ID, quote.Result{Quote: quote.Quote{Text: base.Text, Author: "Rams"}}))
	require.NoError(t, svc.Favorite(context.Background(), env.owner.ID, quote.Result{Quote: quote.Quote{Text: base.Text, Author: "Unknown"}}))

	favs, err := svc.ListFavorites(context.Background(), env.owner.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 2)
}

func TestQuoteService_Favorite_EmptyQuoteIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuoteService(&stubProvider{}, env.favorites, env.items, env.uow)

	require.NoError(t, svc.Favorite(context.Background(), env.owner.ID, quote.Result{}))

	favs, err := svc.ListFavorites(context.Background(), env.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestQuoteService_ListFavorites_CapsAtLimit(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuoteService(&stubProvider{}, env.favorites, env.items, env.uow)

	for i := 0; i < favoritesLimit+3; i++ {
		err := svc.Favorite(context.Background(), env.owner.ID, quote.Result{
			Quote: quote.Quote{Text: fmt.Sprintf("quote %d", i), Author: "Various"},
		})
		require.NoError(t, err)
	}

	favs, err := svc.ListFavorites(context.Background(), env.owner.ID)
	require.NoError(t, err)
	assert.Len(t, favs, favoritesLimit)
}

func TestQuoteService_RemoveFavorite(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuoteService(&stubProvider{}, env.favorites, env.items, env.uow)

	require.NoError(t, svc.Favorite(context.Background(), env.owner.ID, quote.Result{
		Quote: quote.Quote{Text: "gone soon", Author: "Nobody"},
	}))

	favs, err := svc.ListFavorites(context.Background(), env.owner.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)

	require.NoError(t, svc.RemoveFavorite(context.Background(), env.owner.ID, favs[0].ID))

	favs, err = svc.ListFavorites(context.Background(), env.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, favs)
}
