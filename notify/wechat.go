package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// WechatService identifies which push backend a WechatNotifier talks to.
// The backend is chosen at construction time and never changes.
type WechatService string

// WeChat push backends.
const (
	ServerChan WechatService = "serverchan"
	PushPlus   WechatService = "pushplus"
)

// Default backend base URLs.
const (
	serverChanBaseURL = "https://sctapi.ftqq.com"
	pushPlusBaseURL   = "http://www.pushplus.plus"
)

// =============================================================================
// WechatNotifier
// =============================================================================

// WechatNotifier pushes to personal WeChat via ServerChan or PushPlus.
//
// ServerChan embeds the key in the URL path; PushPlus uses a fixed endpoint
// and passes the token as a body field. Neither backend has a color concept,
// so SendCard ignores the color parameter. Actions are appended to the body
// as markdown links.
type WechatNotifier struct {
	Service WechatService
	Client  *http.Client

	// BaseURL overrides the backend endpoint (for tests).
	BaseURL string

	key string
}

// NewServerChanNotifier creates a WeChat notifier backed by ServerChan.
func NewServerChanNotifier(key string) *WechatNotifier {
	return &WechatNotifier{
		Service: ServerChan,
		Client:  newHTTPClient(),
		BaseURL: serverChanBaseURL,
		key:     key,
	}
}

// NewPushPlusNotifier creates a WeChat notifier backed by PushPlus.
func NewPushPlusNotifier(token string) *WechatNotifier {
	return &WechatNotifier{
		Service: PushPlus,
		Client:  newHTTPClient(),
		BaseURL: pushPlusBaseURL,
		key:     token,
	}
}

// SendText implements Notifier.
func (n *WechatNotifier) SendText(ctx context.Context, text string) (any, error) {
	switch n.Service {
	case PushPlus:
		payload := pushPlusMessage{
			Token:    n.key,
			Title:    "Notification",
			Content:  text,
			Template: "txt",
		}
		return postJSON(ctx, n.Client, ChannelWechat, n.BaseURL+"/send", payload)
	default:
		payload := serverChanMessage{Title: "Notification", Desp: text}
		return postJSON(ctx, n.Client, ChannelWechat, n.sendURL(), payload)
	}
}

// SendCard implements Notifier. The color parameter is ignored.
func (n *WechatNotifier) SendCard(ctx context.Context, title, content, color string, actions []Action) (any, error) {
	body := content
	if len(actions) > 0 {
		var sb strings.Builder
		sb.WriteString(body)
		sb.WriteString("\n\n---\n")
		for _, action := range actions {
			fmt.Fprintf(&sb, "[%s](%s)\n", action.Text, action.URL)
		}
		body = sb.String()
	}

	switch n.Service {
	case PushPlus:
		payload := pushPlusMessage{
			Token:    n.key,
			Title:    title,
			Content:  body,
			Template: "markdown",
		}
		return postJSON(ctx, n.Client, ChannelWechat, n.BaseURL+"/send", payload)
	default:
		payload := serverChanMessage{Title: title, Desp: body}
		return postJSON(ctx, n.Client, ChannelWechat, n.sendURL(), payload)
	}
}

func (n *WechatNotifier) sendURL() string {
	return fmt.Sprintf("%s/%s.send", n.BaseURL, n.key)
}

// WeChat push payload types
type serverChanMessage struct {
	Title string `json:"title"`
	Desp  string `json:"desp"`
}

type pushPlusMessage struct {
	Token    string `json:"token"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Template string `json:"template"`
}
