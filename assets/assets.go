// Package assets embeds the web viewer built by cmd/minify.
package assets

import _ "embed"

// Index is the minified viewer page.
//
//go:embed index.html
var Index []byte

// Favicon is the minified site icon.
//
//go:embed favicon.svg
var Favicon []byte
