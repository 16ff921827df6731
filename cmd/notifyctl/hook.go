package main

import (
	"encoding/json"
	"fmt"
	"io"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"github.com/notifyctl/notifyctl/dispatch"
)

func hookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook",
		Short: "Process a notification from stdin (for hook integration)",
		Long: `Read a JSON notification from stdin and dispatch it.

The input object has fields "event", "title", "content", and "level";
missing fields default to "notification", "Notification", "", and "info".

Example:
  echo '{"event":"build_failure","title":"Build #42 failed","level":"critical"}' | notifyctl hook`,
		RunE: runHook,
	}
}

// hookInput is the stdin notification shape. Fields keep their defaults
// when absent from the input.
type hookInput struct {
	Event   string `json:"event"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Level   string `json:"level"`
}

// parseHookInput reads and decodes the stdin payload. Unparseable input is
// fatal for the whole invocation.
func parseHookInput(r io.Reader) (hookInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return hookInput{}, fmt.Errorf("read hook input: %w", err)
	}

	in := hookInput{
		Event: "notification",
		Title: "Notification",
		Level: "info",
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return hookInput{}, fmt.Errorf("parse hook input: %w", err)
	}
	return in, nil
}

func runHook(cmd *cobra.Command, args []string) error {
	in, err := parseHookInput(cmd.InOrStdin())
	if err != nil {
		return err
	}

	d, err := newDispatcher()
	if err != nil {
		return err
	}

	report := d.Dispatch(cmd.Context(), dispatch.Request{
		ID:      gonanoid.Must(8),
		Event:   in.Event,
		Title:   in.Title,
		Content: in.Content,
		Level:   in.Level,
	})

	return printReport(report, false)
}
