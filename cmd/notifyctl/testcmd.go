package main

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"github.com/notifyctl/notifyctl/dispatch"
	"github.com/notifyctl/notifyctl/notify"
)

func testCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <channel>",
		Short: "Send a test notification to a specific channel",
		Long: `Send a test notification to one channel, bypassing quiet hours.

The channel must be one of: teams, feishu, wechat.`,
		Args: cobra.ExactArgs(1),
		RunE: runTest,
	}
}

func runTest(cmd *cobra.Command, args []string) error {
	channel := args[0]
	switch channel {
	case notify.ChannelTeams, notify.ChannelFeishu, notify.ChannelWechat:
	default:
		return fmt.Errorf("unknown channel %q (valid: teams, feishu, wechat)", channel)
	}

	d, err := newDispatcher()
	if err != nil {
		return err
	}

	report := d.Dispatch(cmd.Context(), dispatch.Request{
		ID:       gonanoid.Must(8),
		Event:    "test",
		Title:    "Test Notification",
		Content:  fmt.Sprintf("This is a test message from notifyctl to %s", channel),
		Level:    notify.SeverityInfo,
		Channels: []string{channel},
		Force:    true,
	})

	return printReport(report, true)
}
