// Package wizard models a linear, multi-step listing-creation flow. Track is a
// pure function that turns an immutable Input (steps, current index, busy flag
// and optional navigation callbacks) into a State render description that
// renderers under pkg/renderers consume. Session owns the mutable side of the
// flow: the current index, the saving flag that gates navigation while a host
// submission is in flight, and the cancel/complete lifecycle. Sessions hold no
// persistence responsibility; hosts discard them once they finish.
package wizard
