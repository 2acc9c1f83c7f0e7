// Package file provides the TOML-backed configuration store.
//
// The file lives at <config-dir>/config.toml, ~/.trecct/config.toml by
// default. Tables are exposed as dotted keys, so
//
//	[walk]
//	exclude = ["*.json"]
//
// is read as "walk.exclude".
package file
