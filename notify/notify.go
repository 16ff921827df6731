package notify

import "context"

// =============================================================================
// Channel Names
// =============================================================================

// Channel name constants, as they appear in config and routing tables.
const (
	ChannelTeams  = "teams"
	ChannelFeishu = "feishu"
	ChannelWechat = "wechat"
)

// Severity constants for notifications.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
	SeveritySuccess  = "success"
)

// Severity display colors (hex, no leading #). Teams uses them as the card
// theme color, Feishu as the header template; WeChat has no color concept.
const (
	ColorInfo     = "0078D4"
	ColorWarning  = "FFA500"
	ColorCritical = "DC3545"
	ColorSuccess  = "28A745"
)

// ColorForSeverity maps a severity to its display color.
// Unknown severities fall back to the info color.
func ColorForSeverity(severity string) string {
	switch severity {
	case SeverityWarning:
		return ColorWarning
	case SeverityCritical:
		return ColorCritical
	case SeveritySuccess:
		return ColorSuccess
	default:
		return ColorInfo
	}
}

// =============================================================================
// Notifier Interface
// =============================================================================

// Action is a link button attached to a card message.
type Action struct {
	Text string
	URL  string
}

// Notifier sends messages to a single destination channel.
//
// SendCard is what the dispatcher uses in normal operation; SendText exists
// for plain-text pushes and channel testing. Both return the destination's
// parsed JSON reply without validating its schema.
type Notifier interface {
	SendText(ctx context.Context, text string) (any, error)
	SendCard(ctx context.Context, title, content, color string, actions []Action) (any, error)
}
