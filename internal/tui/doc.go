// Package tui is the Bubble Tea shell around the app.
//
// Allowed here:
// - key bindings and input scopes (alert, address bar, modal, page)
// - text editors for form fields, timers for the clock and toast expiry
// - composing widgets into the frame
//
// Not allowed here:
// - routing, view building, or form semantics (those live in app)
package tui
