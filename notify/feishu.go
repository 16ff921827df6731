package notify

import (
	"context"
	"net/http"
)

// MentionAll is the Feishu markup token that mentions everyone in the chat.
// The dispatcher appends it to critical message bodies before they reach
// this notifier.
const MentionAll = "<at user_id='all'></at>"

// =============================================================================
// FeishuNotifier
// =============================================================================

// FeishuNotifier posts interactive-card payloads to a Feishu bot webhook.
type FeishuNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewFeishuNotifier creates a Feishu webhook notifier.
func NewFeishuNotifier(webhookURL string) *FeishuNotifier {
	return &FeishuNotifier{
		WebhookURL: webhookURL,
		Client:     newHTTPClient(),
	}
}

// SendText implements Notifier.
func (n *FeishuNotifier) SendText(ctx context.Context, text string) (any, error) {
	payload := feishuMessage{
		MsgType: "text",
		Content: &feishuTextContent{Text: text},
	}
	return postJSON(ctx, n.Client, ChannelFeishu, n.WebhookURL, payload)
}

// SendCard implements Notifier.
func (n *FeishuNotifier) SendCard(ctx context.Context, title, content, color string, actions []Action) (any, error) {
	elements := []any{
		feishuMarkdown{Tag: "markdown", Content: content},
	}

	if len(actions) > 0 {
		buttons := make([]feishuButton, 0, len(actions))
		for _, action := range actions {
			buttons = append(buttons, feishuButton{
				Tag:  "button",
				Text: feishuPlainText{Tag: "plain_text", Content: action.Text},
				URL:  action.URL,
				Type: "default",
			})
		}
		elements = append(elements, feishuActionBlock{Tag: "action", Actions: buttons})
	}

	payload := feishuMessage{
		MsgType: "interactive",
		Card: &feishuCard{
			Header: feishuCardHeader{
				Title:    feishuPlainText{Tag: "plain_text", Content: title},
				Template: color,
			},
			Elements: elements,
		},
	}
	return postJSON(ctx, n.Client, ChannelFeishu, n.WebhookURL, payload)
}

// Feishu webhook payload types
type feishuMessage struct {
	MsgType string             `json:"msg_type"`
	Content *feishuTextContent `json:"content,omitempty"`
	Card    *feishuCard        `json:"card,omitempty"`
}

type feishuTextContent struct {
	Text string `json:"text"`
}

type feishuCard struct {
	Header   feishuCardHeader `json:"header"`
	Elements []any            `json:"elements"`
}

type feishuCardHeader struct {
	Title    feishuPlainText `json:"title"`
	Template string          `json:"template"`
}

type feishuPlainText struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

type feishuMarkdown struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

type feishuActionBlock struct {
	Tag     string         `json:"tag"`
	Actions []feishuButton `json:"actions"`
}

type feishuButton struct {
	Tag  string          `json:"tag"`
	Text feishuPlainText `json:"text"`
	URL  string          `json:"url"`
	Type string          `json:"type"`
}
