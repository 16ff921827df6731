package notify

import "github.com/notifyctl/notifyctl/config"

// BuildRegistry builds the channel registry from configuration: one
// Notifier per enabled destination with a non-empty webhook or key. The
// registry is built once at startup and never mutated afterwards.
func BuildRegistry(cfg *config.Config) map[string]Notifier {
	registry := make(map[string]Notifier)

	if c := cfg.Channels.Teams; c != nil && c.Enabled && c.Webhook != "" {
		registry[ChannelTeams] = NewTeamsNotifier(c.Webhook)
	}

	if c := cfg.Channels.Feishu; c != nil && c.Enabled && c.Webhook != "" {
		registry[ChannelFeishu] = NewFeishuNotifier(c.Webhook)
	}

	if c := cfg.Channels.Wechat; c != nil && c.Enabled && c.Key != "" {
		switch WechatService(c.Service) {
		case PushPlus:
			registry[ChannelWechat] = NewPushPlusNotifier(c.Key)
		default:
			registry[ChannelWechat] = NewServerChanNotifier(c.Key)
		}
	}

	return registry
}
