package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariechen/ticked/internal/cli/formatter"
)

func newSubCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage subtasks",
	}

	cmd.AddCommand(
		newSubAddCmd(app),
		newSubListCmd(app),
		newSubDoneCmd(app),
		newSubRemoveCmd(app),
	)

	return cmd
}

func newSubAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <item-id> <title>",
		Short: "Add a subtask under a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			itemID, err := resolveItemID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}

			sub, err := app.Subtasks.Add(ctx, user.ID, itemID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if sub == nil {
				return nil
			}

			fmt.Printf("Added subtask %s\n", formatter.Bold(sub.Title))
			return nil
		},
	}
}

func newSubListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <item-id>",
		Short: "List a task's subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			itemID, err := resolveItemID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}

			item, err := app.Items.GetByID(ctx, user.ID, itemID)
			if err != nil {
				return err
			}

			subs, err := app.Subtasks.ListByItem(ctx, user.ID, itemID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Bold(item.Title))
			if len(subs) == 0 {
				fmt.Println(formatter.Dim("  no subtasks"))
				return nil
			}
			fmt.Print(formatter.FormatSubtaskList(subs))
			return nil
		},
	}
}

func newSubDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a subtask's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			id, err := resolveSubtaskID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}
			return app.Subtasks.Toggle(ctx, user.ID, id)
		},
	}
}

func newSubRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a subtask",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			id, err := resolveSubtaskID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}
			return app.Subtasks.Delete(ctx, user.ID, id)
		},
	}
}
