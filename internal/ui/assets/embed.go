// Package assets embeds the portal's static files (stylesheet, icons).
package assets

import "embed"

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded static file tree rooted at static/.
func StaticFS() embed.FS {
	return staticFS
}
