package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// GlobalConfigDir is the directory under ~/.config/ for the global config.
const GlobalConfigDir = "notifyctl"

// GlobalConfigFile is the global config filename.
const GlobalConfigFile = "config.json"

// LocalConfigName is the filename for local overrides in the git root.
const LocalConfigName = ".notifyctl.yaml"

// EnvPrefix is prepended to key names for environment variable lookup.
const EnvPrefix = "NOTIFYCTL_"

// Config is the full notifyctl configuration. It is loaded once at startup
// and treated as an immutable snapshot for the process lifetime.
type Config struct {
	Channels      Channels            `json:"channels"`
	Notifications map[string][]string `json:"notifications"`
	QuietHours    QuietHours          `json:"quiet_hours"`
}

// Channels holds the per-destination configuration. A nil entry means the
// destination is not configured at all.
type Channels struct {
	Teams  *TeamsConfig  `json:"teams,omitempty"`
	Feishu *FeishuConfig `json:"feishu,omitempty"`
	Wechat *WechatConfig `json:"wechat,omitempty"`
}

// TeamsConfig configures the Teams incoming-webhook destination.
type TeamsConfig struct {
	Enabled bool   `json:"enabled"`
	Webhook string `json:"webhook"`
}

// FeishuConfig configures the Feishu bot-webhook destination.
type FeishuConfig struct {
	Enabled bool   `json:"enabled"`
	Webhook string `json:"webhook"`

	// AtAllOnCritical appends a mention-all token to critical messages.
	AtAllOnCritical bool `json:"at_all_on_critical"`
}

// WechatConfig configures the personal WeChat push destination.
type WechatConfig struct {
	Enabled bool   `json:"enabled"`
	Service string `json:"service"` // "serverchan" or "pushplus"
	Key     string `json:"key"`
}

// QuietHours is a local-time window during which non-critical notifications
// are suppressed. Start and End are "HH:MM"; the window may wrap midnight.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Default returns the built-in configuration: no channels configured, the
// default routing table, and quiet hours 22:00-08:00.
//
// The routing table deliberately has no "test" entry; the test command
// always supplies an explicit channel override.
func Default() *Config {
	return &Config{
		Notifications: map[string][]string{
			"build_success":  {"teams", "feishu"},
			"build_failure":  {"teams", "feishu", "wechat"},
			"security_alert": {"teams", "feishu", "wechat"},
			"daily_report":   {"feishu"},
		},
		QuietHours: QuietHours{
			Enabled: true,
			Start:   "22:00",
			End:     "08:00",
		},
	}
}

// Path returns the global config file path (~/.config/notifyctl/config.json).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".config", GlobalConfigDir, GlobalConfigFile), nil
}

// LoadOptions configures Load. The zero value uses the standard global
// path, searches for the git root from the working directory, and writes
// warnings to stderr.
type LoadOptions struct {
	// Path is the global config file. Empty means Path().
	Path string

	// WorkDir is where the git root search for the local override starts.
	// Empty means the current directory.
	WorkDir string

	// ErrWriter is where warnings are written. Nil means os.Stderr.
	ErrWriter io.Writer
}

// Load builds the configuration snapshot: defaults, then the global JSON
// file, then the local YAML override, then environment variables.
//
// An absent global file is not an error; a malformed one is.
func Load(opts LoadOptions) (*Config, error) {
	if opts.Path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		opts.Path = p
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}

	cfg := Default()

	data, err := os.ReadFile(opts.Path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", opts.Path, err)
		}
	case os.IsNotExist(err):
		// No global config - run on defaults.
	default:
		return nil, fmt.Errorf("read %s: %w", opts.Path, err)
	}

	applyLocal(cfg, opts)
	applyEnv(cfg)

	return cfg, nil
}
