// Package notify implements the webhook channels that notifyctl delivers to.
//
// Core types:
//   - Notifier: Interface for sending text and card messages to one channel
//   - Action: A link button attached to a card
//
// Implementations:
//   - TeamsNotifier: Posts MessageCard payloads to a Teams incoming webhook
//   - FeishuNotifier: Posts interactive-card payloads to a Feishu bot webhook
//   - WechatNotifier: Pushes to WeChat via ServerChan or PushPlus
//   - LogNotifier: Logs messages instead of sending (for testing/debugging)
//
// All channels share the same transport: a single blocking JSON POST with a
// 10-second timeout. Non-2xx replies surface as *APIError carrying the
// status code; 2xx replies are parsed as JSON and returned raw.
//
// Example usage:
//
//	n := notify.NewTeamsNotifier(webhookURL)
//	resp, err := n.SendCard(ctx, "Build #42 failed", "exit code 1", "DC3545", nil)
package notify
