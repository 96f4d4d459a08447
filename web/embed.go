// Package web embeds the dashboard assets so the server ships as one binary.
package web

import "embed"

//go:embed static
var Files embed.FS
