// Package server runs the dashboard HTTP API.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown once SIGINT, SIGTERM or SIGQUIT arrives or the parent context is
// cancelled.
package server
