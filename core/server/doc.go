// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the optional API key and the
// public base URL. OriginFor decides which origin route handlers pass to
// the catalog when it runs in network mode.
package server
