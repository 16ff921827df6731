package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localOverride is the subset of configuration that a repository may
// override via .notifyctl.yaml in its git root. Webhook URLs and keys stay
// out of it so secrets never land in a checked-in file.
type localOverride struct {
	Notifications map[string][]string `yaml:"notifications"`
	QuietHours    *QuietHours         `yaml:"quiet_hours"`
}

// applyLocal merges the local override file, if one exists, onto cfg.
// A malformed local file is a warning, not an error.
func applyLocal(cfg *Config, opts LoadOptions) {
	root := findGitRoot(opts.WorkDir)
	if root == "" {
		return
	}

	path := filepath.Join(root, LocalConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		return // File doesn't exist - not an error
	}

	var local localOverride
	if err := yaml.Unmarshal(data, &local); err != nil {
		fmt.Fprintf(opts.ErrWriter, "Warning: could not parse %s: %v\n", path, err)
		return
	}

	for event, channels := range local.Notifications {
		cfg.Notifications[event] = channels
	}
	if local.QuietHours != nil {
		cfg.QuietHours = *local.QuietHours
	}
}

// applyEnv overlays environment variables onto cfg. Setting a webhook or
// key via the environment also enables that channel, so a bare environment
// is enough to configure a destination.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "TEAMS_WEBHOOK"); v != "" {
		if cfg.Channels.Teams == nil {
			cfg.Channels.Teams = &TeamsConfig{}
		}
		cfg.Channels.Teams.Webhook = v
		cfg.Channels.Teams.Enabled = true
	}
	if v := os.Getenv(EnvPrefix + "FEISHU_WEBHOOK"); v != "" {
		if cfg.Channels.Feishu == nil {
			cfg.Channels.Feishu = &FeishuConfig{AtAllOnCritical: true}
		}
		cfg.Channels.Feishu.Webhook = v
		cfg.Channels.Feishu.Enabled = true
	}
	if v := os.Getenv(EnvPrefix + "WECHAT_KEY"); v != "" {
		if cfg.Channels.Wechat == nil {
			cfg.Channels.Wechat = &WechatConfig{Service: "serverchan"}
		}
		cfg.Channels.Wechat.Key = v
		cfg.Channels.Wechat.Enabled = true
	}
	if v := os.Getenv(EnvPrefix + "WECHAT_SERVICE"); v != "" {
		if cfg.Channels.Wechat == nil {
			cfg.Channels.Wechat = &WechatConfig{}
		}
		cfg.Channels.Wechat.Service = v
	}
}

// findGitRoot finds the git root by looking for a .git directory.
func findGitRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return ""
}
