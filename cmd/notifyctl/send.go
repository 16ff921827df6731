package main

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"github.com/notifyctl/notifyctl/dispatch"
)

var (
	sendEvent    string
	sendTitle    string
	sendContent  string
	sendLevel    string
	sendChannels []string
	sendForce    bool
)

func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification",
		Long: `Send a notification to the channels routed for an event type.

Examples:
  # Route by event type
  notifyctl send -e build_failure -t "Build #42 failed" -c "exit code 1" -l critical

  # Override the routing table
  notifyctl send -e deploy -t "Deployed" -c "v1.4.2 is live" --channels teams,feishu

  # Ignore quiet hours
  notifyctl send -e daily_report -t "Report" -c "all green" -f`,
		RunE: runSend,
	}

	cmd.Flags().StringVarP(&sendEvent, "event", "e", "", "Event type (e.g. build_success, build_failure, security_alert)")
	cmd.Flags().StringVarP(&sendTitle, "title", "t", "", "Notification title")
	cmd.Flags().StringVarP(&sendContent, "content", "c", "", "Notification content")
	cmd.Flags().StringVarP(&sendLevel, "level", "l", "info", "Notification level (info, warning, critical, success)")
	cmd.Flags().StringSliceVar(&sendChannels, "channels", nil, "Specific channels to send to (overrides config)")
	cmd.Flags().BoolVarP(&sendForce, "force", "f", false, "Force send even during quiet hours")
	cmd.MarkFlagRequired("event")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("content")

	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	d, err := newDispatcher()
	if err != nil {
		return err
	}

	report := d.Dispatch(cmd.Context(), dispatch.Request{
		ID:       gonanoid.Must(8),
		Event:    sendEvent,
		Title:    sendTitle,
		Content:  sendContent,
		Level:    sendLevel,
		Channels: sendChannels,
		Force:    sendForce,
	})

	return printReport(report, true)
}
