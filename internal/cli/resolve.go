package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/repository"
)

// resolveItemID maps user input to a full item ID, accepting either the
// exact UUID or an unambiguous prefix.
func resolveItemID(ctx context.Context, app *App, ownerID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	items, err := app.Items.List(ctx, ownerID, repository.ItemFilter{})
	if err != nil {
		return "", err
	}

	for _, item := range items {
		if item.ID == input {
			return item.ID, nil
		}
	}

	var matches []string
	for _, item := range items {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSubtaskID maps user input to a full subtask ID by scanning the
// owner's items.
func resolveSubtaskID(ctx context.Context, app *App, ownerID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("subtask ID is required")
	}

	items, err := app.Items.List(ctx, ownerID, repository.ItemFilter{})
	if err != nil {
		return "", err
	}

	var all []*domain.Subtask
	for _, item := range items {
		subs, err := app.Subtasks.ListByItem(ctx, ownerID, item.ID)
		if err != nil {
			return "", err
		}
		all = append(all, subs...)
	}

	for _, sub := range all {
		if sub.ID == input {
			return sub.ID, nil
		}
	}

	var matches []string
	for _, sub := range all {
		if strings.HasPrefix(sub.ID, input) {
			matches = append(matches, sub.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("subtask not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("subtask ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
