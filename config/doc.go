// Package config loads and persists notifyctl configuration.
//
// Configuration is layered with clear precedence:
//  1. Environment variables with the NOTIFYCTL_ prefix (highest priority)
//  2. Local overrides (.notifyctl.yaml in the git root)
//  3. Global config (~/.config/notifyctl/config.json)
//  4. Built-in defaults (lowest priority)
//
// The global file is JSON and holds the full configuration: per-channel
// enable flags and webhook URLs/keys, the event-to-channel routing table,
// and the quiet-hours window. An absent global file yields the defaults; a
// malformed one is a fatal error. The local YAML file may override only the
// routing table and quiet hours, and a malformed local file is a warning,
// not an error.
//
// Secrets can come from the environment (NOTIFYCTL_TEAMS_WEBHOOK,
// NOTIFYCTL_FEISHU_WEBHOOK, NOTIFYCTL_WECHAT_KEY) so webhook URLs never
// need to live in a checked-in file.
package config
