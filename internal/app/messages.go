package app

import (
	"context"
	"strconv"
	"time"

	apperrors "github.com/Mobo140/vupp-cli/internal/errors"
	"github.com/Mobo140/vupp-cli/internal/ui"
	"github.com/olekukonko/tablewriter"
)

// PrintMessages fetches the list once and prints it as a table.
// Like the chat screen, it needs a local session.
func (a *App) PrintMessages(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return apperrors.ErrNotAuthenticated
	}

	messages, err := a.chat.List(ctx)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"ID", "Time", "Sender", "Content"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	now := time.Now()
	for _, msg := range messages {
		table.Append([]string{
			strconv.FormatInt(msg.ID, 10),
			ui.FormatTime(msg.Timestamp, now),
			msg.Sender,
			msg.Content,
		})
	}

	table.Render()

	return nil
}

// WhoAmI returns the locally stored username, or ErrNotAuthenticated.
func (a *App) WhoAmI() (string, error) {
	username, err := a.session.Username()
	if err != nil {
		return "", err
	}

	if username == "" {
		return "", apperrors.ErrNotAuthenticated
	}

	return username, nil
}
