// Package treecache stores a serialized inventory tree in object storage.
//
// It backs the development-mode fast path of the dashboard reload: instead
// of hitting the slow upstream sources on every refresh, the coordinator
// first consults this cache and only refetches (and writes back) on a miss.
// Production deployments never read it.
//
// The cache is deliberately forgiving: an absent object, a failed read, or
// a corrupt payload are all treated identically as "not cached". Only Write
// reports errors, and callers log them without failing the load.
package treecache
