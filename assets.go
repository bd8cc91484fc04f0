package listingwizard

import (
	"io/fs"

	"github.com/goliatone/go-listingwizard/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in HTML header templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// StylesheetFS exposes the default header stylesheet.
//
// Typical mount:
//
//	mux.Handle("/wizard/",
//	  http.StripPrefix("/wizard/",
//	    http.FileServerFS(listingwizard.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return vanilla.AssetsFS()
}
