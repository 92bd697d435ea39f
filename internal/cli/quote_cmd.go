package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mariechen/ticked/internal/cli/formatter"
)

func newQuoteCmd(app *App) *cobra.Command {
	var fav bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show a quote toned to your day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			res, err := app.Quotes.Daily(ctx, user.ID, time.Now())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatQuote(res))

			if fav {
				if err := app.Quotes.Favorite(ctx, user.ID, res); err != nil {
					return err
				}
				fmt.Println(formatter.Dim("Saved to favorites."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fav, "fav", false, "Save the quote to favorites")

	cmd.AddCommand(
		newQuoteFavoritesCmd(app),
		newQuoteUnfavCmd(app),
	)

	return cmd
}

func newQuoteFavoritesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List your saved quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			favs, err := app.Quotes.ListFavorites(ctx, user.ID)
			if err != nil {
				return err
			}

			if len(favs) == 0 {
				fmt.Println("No favorite quotes yet.")
				return nil
			}
			fmt.Print(formatter.FormatFavorites(favs))
			return nil
		},
	}
}

func newQuoteUnfavCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unfav <id>",
		Short: "Remove a saved quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}
			return app.Quotes.RemoveFavorite(ctx, user.ID, args[0])
		},
	}
}
