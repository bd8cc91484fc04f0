// Package template defines the renderer-agnostic template seam used by the HTML
// renderers, with a pongo2-backed implementation in the gotemplate subpackage.
package template
