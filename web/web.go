// Package web embeds the static demo page served by lookupd.
package web

import "embed"

//go:embed index.html main.js style.css
var Assets embed.FS
