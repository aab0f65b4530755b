// Package server holds the HTTP server configuration.
//
// Besides the listen port and API key it carries the runtime mode:
// development mode enables the serialized tree cache so repeated
// refreshes don't hammer the upstream sources, production mode always
// rebuilds from the providers. An optional refresh interval drives the
// periodic background reload.
package server
