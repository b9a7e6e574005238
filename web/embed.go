// Package web embeds the site's HTML templates.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
