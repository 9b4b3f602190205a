// Package widgets contains dumb render primitives and the view descriptor
// renderer.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, popup and toast overlays)
// - drawing a views.View against live region state
//
// Not allowed here:
// - key handling, routing, wiring, or any state transition
package widgets
