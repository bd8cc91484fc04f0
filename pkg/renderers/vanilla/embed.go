package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the embedded default stylesheet.
const StylesheetName = "listingwizard.css"

// StylesheetAssetKey is the theme asset key looked up for a stylesheet link.
const StylesheetAssetKey = "stylesheet"

// TemplatesFS exposes the embedded header templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded CSS so callers can serve it over HTTP or copy
// it into their own asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
