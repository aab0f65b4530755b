// Package dashboard maintains the always-available inventory tree snapshot.
//
// The Service is a reload coordinator: it holds exactly one current load
// Job at a time, serves that job's visible tree to readers without ever
// blocking or failing, and rebuilds the tree on demand via Invalidate.
//
// # Reload semantics
//
// Invalidate creates a fresh Job seeded with the previous tree as
// fallback, installs it with a compare-and-swap on the current-job slot,
// cancels the job it replaced, and waits for the new job to resolve.
// Overlapping invalidations therefore coalesce by cancel-and-replace: the
// superseded load is told to stop and its eventual result is discarded,
// while readers keep seeing the last known-good tree throughout.
//
// Failures never reach the caller. A cancelled or failed load leaves the
// fallback tree visible; an upstream quota rejection degrades to the
// fallback (or the empty tree when none exists yet). Only a successful
// load publishes a new tree and fires the change notification.
//
// # HTTP surface
//
//   - GET  /tree          : current tree plus load metadata
//   - GET  /tree/meta     : load metadata only
//   - POST /tree/refresh  : trigger a reload (?force=true skips the cache)
package dashboard
