package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mariechen/ticked/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion stats, weekly histogram and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			summary, err := app.Analytics.Compute(ctx, user.ID, time.Now())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSummary(summary))
			return nil
		},
	}
}

func newCalendarCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month grid of due dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			now := time.Now()
			year, m := now.Year(), now.Month()
			if month != "" {
				parsed, err := time.ParseInLocation("2006-01", month, time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
				}
				year, m = parsed.Year(), parsed.Month()
			}

			cal, err := app.Analytics.DueCalendar(ctx, user.ID, year, m, time.Local)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatCalendar(cal, now))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to show (YYYY-MM, default current)")

	return cmd
}
