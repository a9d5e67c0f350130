// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled in the start command; this package
// only defines the partial configuration section consumed by core/config.
package server
