// Package timeouts defines the HTTP server limits shared by launchboard
// commands.
package timeouts

import "time"

// ReadHeader limits how long the dashboard waits for request headers.
const ReadHeader = 5 * time.Second

// Write bounds a single response, chart rendering included.
const Write = 15 * time.Second

// Idle closes keep-alive connections that stay quiet this long.
const Idle = 60 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
