// Package orchestrator wires step resolution (explicit steps, listing
// profiles, or OpenAPI operations), theme selection, localization and the
// renderer registry behind a single Generate call.
package orchestrator
