// Package memory provides in-memory implementations of the driven ports.
// They back the services in tests and when run history is disabled.
package memory
