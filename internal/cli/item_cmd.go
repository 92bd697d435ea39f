package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mariechen/ticked/internal/cli/formatter"
	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/repository"
	"github.com/mariechen/ticked/internal/service"
)

// parseDue accepts "YYYY-MM-DD" or "YYYY-MM-DD HH:MM" in local time.
func parseDue(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD or YYYY-MM-DD HH:MM", input)
}

func newAddCmd(app *App) *cobra.Command {
	var due, priority, every, category, description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the end of your list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			dueAt, err := parseDue(due)
			if err != nil {
				return err
			}

			item, err := app.Items.Add(ctx, user.ID, service.AddItemInput{
				Title:       strings.Join(args, " "),
				Description: description,
				DueAt:       dueAt,
				Priority:    domain.Priority(strings.ToUpper(priority)),
				Recurrence:  domain.Recurrence(strings.ToUpper(every)),
				Category:    category,
			})
			if err != nil {
				return err
			}
			if item == nil {
				return nil
			}

			fmt.Printf("Added %s %s\n", formatter.Bold(item.Title), formatter.Dim("("+item.ID[:8]+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (low, medium, high)")
	cmd.Flags().StringVar(&every, "every", "", "Recurrence (daily, weekly)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Longer description")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var status, priority, category, search, sort string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			items, err := app.Items.List(ctx, user.ID, repository.ItemFilter{
				Status:   repository.StatusFilter(status),
				Priority: strings.ToUpper(priority),
				Category: category,
				Search:   search,
				Sort:     repository.ItemSort(sort),
			})
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Print(formatter.FormatItemList(items, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "Filter by status (all, active, completed)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Filter by priority (low, medium, high)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search in title, description and category")
	cmd.Flags().StringVar(&sort, "sort", "manual", "Sort order (manual, newest, oldest, due, priority)")

	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var title, due, priority, every, category, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			id, err := resolveItemID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}

			item, err := app.Items.GetByID(ctx, user.ID, id)
			if err != nil {
				return err
			}

			// Unset flags keep their current values.
			in := service.UpdateItemInput{
				ID:          item.ID,
				Title:       item.Title,
				Description: item.Description,
				DueAt:       item.DueAt,
				Priority:    item.Priority,
				Recurrence:  item.Recurrence,
				Category:    item.Category,
			}
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			if cmd.Flags().Changed("due") {
				dueAt, err := parseDue(due)
				if err != nil {
					return err
				}
				in.DueAt = dueAt
			}
			if cmd.Flags().Changed("priority") {
				in.Priority = domain.Priority(strings.ToUpper(priority))
			}
			if cmd.Flags().Changed("every") {
				in.Recurrence = domain.Recurrence(strings.ToUpper(every))
			}
			if cmd.Flags().Changed("category") {
				in.Category = category
			}
			if cmd.Flags().Changed("desc") {
				in.Description = description
			}

			if err := app.Items.Update(ctx, user.ID, in); err != nil {
				return err
			}
			fmt.Println("Updated.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or YYYY-MM-DD HH:MM, empty clears)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (low, medium, high)")
	cmd.Flags().StringVar(&every, "every", "", "Recurrence (none, daily, weekly)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Longer description")

	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			id, err := resolveItemID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}

			item, err := app.Items.Toggle(ctx, user.ID, id)
			if err != nil {
				return err
			}
			if item == nil {
				return nil
			}

			if item.Completed {
				fmt.Printf("Done: %s\n", formatter.Bold(item.Title))
				if item.Recurrence != domain.RecurrenceNone && item.DueAt != nil {
					fmt.Println(formatter.Dim("Next occurrence scheduled."))
				}
			} else {
				fmt.Printf("Reopened: %s\n", formatter.Bold(item.Title))
			}
			return nil
		},
	}
}

func newPinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin or unpin a task to the top of the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			id, err := resolveItemID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}
			return app.Items.TogglePin(ctx, user.ID, id)
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <up|down>",
		Short: "Swap a task with its neighbor in manual order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			var dir domain.MoveDirection
			switch strings.ToLower(args[1]) {
			case "up":
				dir = domain.MoveUp
			case "down":
				dir = domain.MoveDown
			default:
				return fmt.Errorf("direction must be 'up' or 'down', got %q", args[1])
			}

			id, err := resolveItemID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}
			return app.Items.Move(ctx, user.ID, id, dir)
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task and its subtasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}

			id, err := resolveItemID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}
			return app.Items.Delete(ctx, user.ID, id)
		},
	}
}

func newCompleteAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete-all",
		Short: "Mark every task completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}
			if err := app.Items.CompleteAll(ctx, user.ID); err != nil {
				return err
			}
			fmt.Println("All tasks completed.")
			return nil
		},
	}
}

func newClearCompletedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete all completed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.currentUser(ctx)
			if err != nil {
				return err
			}
			if err := app.Items.DeleteCompleted(ctx, user.ID); err != nil {
				return err
			}
			fmt.Println("Completed tasks cleared.")
			return nil
		},
	}
}
