// Package tracing wraps OpenTelemetry so that the crossuuid command can report each
// self-check step as a span. Library packages do not depend on it.
package tracing
