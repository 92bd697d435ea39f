package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mariechen/ticked/internal/db"
	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/quote"
	"github.com/mariechen/ticked/internal/repository"
)

// favoritesLimit caps how many saved quotes are shown.
const favoritesLimit = 6

type quoteService struct {
	provider  quote.Provider
	favorites repository.FavoriteQuoteRepo
	items     repository.ItemRepo
	uow       db.UnitOfWork
	now       func() time.Time
}

func NewQuoteService(provider quote.Provider, favorites repository.FavoriteQuoteRepo, items repository.ItemRepo, uow db.UnitOfWork) QuoteService {
	return &quoteService{
		provider:  provider,
		favorites: favorites,
		items:     items,
		uow:       uow,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *quoteService) Daily(ctx context.Context, ownerID string, now time.Time) (quote.Result, error) {
	counts, err := s.items.Counts(ctx, ownerID, now)
	if err != nil {
		return quote.Result{}, err
	}

	completedAll := counts.Total > 0 && counts.Completed == counts.Total
	tone := quote.ToneFor(domain.TimeOfDayAt(now.Hour()), completedAll)

	return s.provider.Fetch(ctx, tone), nil
}

func (s *quoteService) Favorite(ctx context.Context, ownerID string, q quote.Result) error {
	if q.Text == "" {
		return nil
	}

	// Dedup by (quote, author) with a read-before-write inside the tx.
	// Two concurrent identical saves can still both insert; the schema
	// carries no unique index on the pair.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFavorites := repository.NewSQLiteFavoriteQuoteRepo(tx)

		exists, err := txFavorites.Exists(ctx, ownerID, q.Text, q.Author)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		return txFavorites.Create(ctx, &domain.FavoriteQuote{
			ID:        uuid.New().String(),
			OwnerID:   ownerID,
			Quote:     q.Text,
			Author:    q.Author,
			Tone:      q.Tone,
			Source:    q.Source,
			CreatedAt: s.now(),
		})
	})
}

func (s *quoteService) ListFavorites(ctx context.Context, ownerID string) ([]*domain.FavoriteQuote, error) {
	return s.favorites.ListRecent(ctx, ownerID, favoritesLimit)
}

func (s *quoteService) RemoveFavorite(ctx context.Context, ownerID, id string) error {
	return s.favorites.Delete(ctx, ownerID, id)
}
