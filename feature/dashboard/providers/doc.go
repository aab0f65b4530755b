// Package providers contains the upstream sources the dashboard tree is
// built from. Each provider fetches one partial forest; the dashboard
// service merges them into the published snapshot.
//
// # Contract
//
// Providers are slow and failure-prone by assumption. They must honor
// best-effort cooperative cancellation through the given context and map
// upstream rate limiting to ErrQuotaExceeded so the coordinator can
// degrade to the last known-good tree instead of surfacing an error.
//
// # Implementations
//
//   - Database: reads the emulator catalog tables via GORM and groups
//     items by type.
//   - Catalog: lists the asset bucket and groups objects by top-level
//     prefix.
package providers
