package notify

import (
	"context"
	"net/http"
)

// =============================================================================
// TeamsNotifier
// =============================================================================

// TeamsNotifier posts MessageCard payloads to a Teams incoming webhook.
type TeamsNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewTeamsNotifier creates a Teams webhook notifier.
func NewTeamsNotifier(webhookURL string) *TeamsNotifier {
	return &TeamsNotifier{
		WebhookURL: webhookURL,
		Client:     newHTTPClient(),
	}
}

// SendText implements Notifier.
func (n *TeamsNotifier) SendText(ctx context.Context, text string) (any, error) {
	payload := teamsText{Text: text}
	return postJSON(ctx, n.Client, ChannelTeams, n.WebhookURL, payload)
}

// SendCard implements Notifier.
func (n *TeamsNotifier) SendCard(ctx context.Context, title, content, color string, actions []Action) (any, error) {
	card := teamsCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: color,
		Summary:    title,
		Sections: []teamsSection{
			{
				ActivityTitle: title,
				Text:          content,
				Markdown:      true,
			},
		},
	}

	for _, action := range actions {
		card.PotentialAction = append(card.PotentialAction, teamsOpenURI{
			Type: "OpenUri",
			Name: action.Text,
			Targets: []teamsURITarget{
				{OS: "default", URI: action.URL},
			},
		})
	}

	return postJSON(ctx, n.Client, ChannelTeams, n.WebhookURL, card)
}

// Teams webhook payload types
type teamsText struct {
	Text string `json:"text"`
}

type teamsCard struct {
	Type            string         `json:"@type"`
	Context         string         `json:"@context"`
	ThemeColor      string         `json:"themeColor"`
	Summary         string         `json:"summary"`
	Sections        []teamsSection `json:"sections"`
	PotentialAction []teamsOpenURI `json:"potentialAction,omitempty"`
}

type teamsSection struct {
	ActivityTitle string `json:"activityTitle"`
	Text          string `json:"text"`
	Markdown      bool   `json:"markdown"`
}

type teamsOpenURI struct {
	Type    string           `json:"@type"`
	Name    string           `json:"name"`
	Targets []teamsURITarget `json:"targets"`
}

type teamsURITarget struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}
