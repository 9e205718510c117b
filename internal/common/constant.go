// Package common contains small helpers and constants shared by the client
// and the reference server.
package common

// RequestIDHeader carries the per-call id generated by the API client and
// echoed by the server in its access log.
const RequestIDHeader = "X-Request-Id"
