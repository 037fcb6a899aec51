// Package assets embeds the component style sheet served next to the
// provider's custom properties.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

// StylesheetName is the file name of the component style sheet.
const StylesheetName = "topiray.css"

//go:embed topiray.css
var files embed.FS

// FS exposes the embedded assets.
func FS() fs.FS {
	return files
}

// Handler serves the embedded assets. Mount it behind http.StripPrefix.
func Handler() http.Handler {
	return http.FileServer(http.FS(files))
}
