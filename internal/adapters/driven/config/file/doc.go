// Package file provides the TOML-backed configuration store.
//
// Settings are addressed by dotted keys ("export.format") and written to
// disk as nested tables:
//
//	[export]
//	format = "pdf"
package file
