// Package render defines the renderer contract for wizard headers, the
// renderer registry and the localization seam renderers share. Renderers turn
// a wizard.State render description into bytes (HTML, terminal text, JSON).
package render
