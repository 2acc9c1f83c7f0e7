// Package connectors provides the corpus discovery adapters.
//
// Available connectors:
//   - filesystem: walks a split/bucket/file directory tree and watches it for changes
package connectors
