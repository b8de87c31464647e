// Package web embeds the static single page UI.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
