package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariechen/ticked/internal/auth"
	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Items     service.ItemService
	Subtasks  service.SubtaskService
	Analytics service.AnalyticsService
	Quotes    service.QuoteService
	Auth      service.AuthService
	Sessions  *auth.SessionStore

	// IsInteractive reports whether stdin is a terminal, gating the
	// prompt-based flows.
	IsInteractive func() bool
}

// ErrNotLoggedIn is returned by commands that need a session when none
// exists.
var ErrNotLoggedIn = errors.New("not logged in, run 'ticked login' first")

// currentUser resolves the stored session to a user.
func (app *App) currentUser(ctx context.Context) (*domain.User, error) {
	token, err := app.Sessions.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	user, err := app.Auth.VerifyToken(ctx, token)
	if errors.Is(err, auth.ErrInvalidToken) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("resolving session: %w", err)
	}
	return user, nil
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "ticked" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ticked",
		Short:         "Personal task manager with recurrence, analytics and daily quotes",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newSignupCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newAddCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newDoneCmd(app),
		newPinCmd(app),
		newMoveCmd(app),
		newRemoveCmd(app),
		newCompleteAllCmd(app),
		newClearCompletedCmd(app),
		newSubCmd(app),
		newStatsCmd(app),
		newCalendarCmd(app),
		newQuoteCmd(app),
	)

	return root
}
