package dispatch

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/notifyctl/notifyctl/config"
	"github.com/notifyctl/notifyctl/notify"
)

// Whole-call suppression statuses.
const (
	StatusQuietHours = "quiet_hours"
	StatusDuplicate  = "duplicate"
)

// Request describes one notification to dispatch.
type Request struct {
	// ID correlates log lines for this invocation. Optional.
	ID string

	Event   string
	Title   string
	Content string
	Level   string

	// Channels overrides the routing table when non-nil. Names without a
	// registry entry are silently skipped.
	Channels []string

	// Force sends even during quiet hours.
	Force bool
}

// Outcome is the result of delivering to one channel.
type Outcome struct {
	Success  bool   `json:"success"`
	Response any    `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Report is the result of one dispatch call. When Status is set the whole
// call was suppressed and no channel was attempted; otherwise Channels maps
// each attempted channel to its outcome.
type Report struct {
	Status   string
	Channels map[string]Outcome
}

// MarshalJSON renders a suppressed report as {"status": "..."} and a
// delivered one as the channel-to-outcome map.
func (r Report) MarshalJSON() ([]byte, error) {
	if r.Status != "" {
		return json.Marshal(map[string]string{"status": r.Status})
	}
	if r.Channels == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Channels)
}

// Dispatcher routes notifications to the configured channels. It owns the
// dedup cache for the process run; construct one per invocation and thread
// it through rather than sharing state globally.
type Dispatcher struct {
	cfg      *config.Config
	registry map[string]notify.Notifier
	cache    *Cache
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-channel failures.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithClock sets the time source (for tests).
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// New creates a Dispatcher over the given config snapshot and channel
// registry.
func New(cfg *config.Config, registry map[string]notify.Notifier, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:      cfg,
		registry: registry,
		cache:    NewCache(),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch delivers one notification and returns the per-channel report.
//
// Suppression (quiet hours, dedup) short-circuits the whole call with a
// status report and zero HTTP requests. Per-channel transport failures are
// captured in that channel's outcome and never returned as an error; the
// call itself always succeeds.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Report {
	now := d.now()

	if !req.Force && req.Level != notify.SeverityCritical && d.quietHoursActive(now) {
		d.logger.Info("suppressed by quiet hours", "id", req.ID, "event", req.Event)
		return Report{Status: StatusQuietHours}
	}

	if !d.cache.ShouldSend(Fingerprint(req.Event, req.Title, req.Content), now) {
		d.logger.Info("suppressed as duplicate", "id", req.ID, "event", req.Event)
		return Report{Status: StatusDuplicate}
	}

	channels := req.Channels
	if channels == nil {
		channels = d.cfg.Notifications[req.Event]
	}

	color := notify.ColorForSeverity(req.Level)

	outcomes := make(map[string]Outcome)
	for _, name := range channels {
		notifier, ok := d.registry[name]
		if !ok {
			continue // Unconfigured channel names are skipped, not errors
		}

		content := req.Content
		if req.Level == notify.SeverityCritical && name == notify.ChannelFeishu && d.feishuMentionsAll() {
			content += "\n" + notify.MentionAll
		}

		response, err := notifier.SendCard(ctx, req.Title, content, color, nil)
		if err != nil {
			d.logger.Warn("channel send failed",
				"id", req.ID,
				"channel", name,
				"error", err,
			)
			outcomes[name] = Outcome{Error: err.Error()}
			continue
		}
		outcomes[name] = Outcome{Success: true, Response: response}
	}

	return Report{Channels: outcomes}
}

// quietHoursActive reports whether now falls inside the configured window.
// Times compare as local "HH:MM" strings; a start at or after the end means
// the window wraps midnight.
func (d *Dispatcher) quietHoursActive(now time.Time) bool {
	return quietHoursActive(d.cfg.QuietHours, now)
}

func quietHoursActive(q config.QuietHours, now time.Time) bool {
	if !q.Enabled {
		return false
	}

	hhmm := now.Format("15:04")
	if q.Start < q.End {
		return hhmm >= q.Start && hhmm <= q.End
	}
	return hhmm >= q.Start || hhmm <= q.End
}

func (d *Dispatcher) feishuMentionsAll() bool {
	return d.cfg.Channels.Feishu != nil && d.cfg.Channels.Feishu.AtAllOnCritical
}
