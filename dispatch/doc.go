// Package dispatch implements the notification dispatch pipeline.
//
// A Dispatcher owns the configuration snapshot, the channel registry, and
// the dedup cache for one process run. Dispatch applies, in order:
// quiet-hours suppression, deduplication, channel selection, severity-color
// mapping, and sequential delivery to each selected channel. The result is
// a per-channel outcome map; one channel failing never blocks the others.
package dispatch
