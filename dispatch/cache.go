package dispatch

import "time"

// DedupWindow is how long a fingerprint suppresses repeats after a send.
const DedupWindow = 300 * time.Second

// cacheTTL is how long entries survive before the purge-on-insert sweep
// drops them.
const cacheTTL = 600 * time.Second

// Cache tracks when each message fingerprint was last sent. It lives for
// the process run only and is owned by exactly one Dispatcher, so it needs
// no locking.
type Cache struct {
	entries map[string]time.Time
}

// NewCache creates an empty dedup cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]time.Time)}
}

// ShouldSend reports whether a message with the given fingerprint may be
// sent at now. A fingerprint seen within DedupWindow of a prior send is
// suppressed; otherwise now is recorded and entries older than cacheTTL
// are purged.
func (c *Cache) ShouldSend(fingerprint string, now time.Time) bool {
	if last, ok := c.entries[fingerprint]; ok && now.Sub(last) < DedupWindow {
		return false
	}

	c.entries[fingerprint] = now

	for key, sent := range c.entries {
		if now.Sub(sent) >= cacheTTL {
			delete(c.entries, key)
		}
	}

	return true
}

// Len returns the number of cached fingerprints.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Fingerprint derives the dedup key for a notification: the event type,
// title, and the first 50 characters of content. The prefix is counted in
// Unicode scalars, not bytes, so multibyte content never splits mid-rune.
func Fingerprint(event, title, content string) string {
	runes := []rune(content)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return event + ":" + title + ":" + string(runes)
}
