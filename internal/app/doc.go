// Package app is the view-routing and render-state engine.
//
// Allowed here:
// - the application context (session, data, address, notifications, store)
// - route resolution, mounting and per-render interaction wiring
// - named state transitions (sign up, log in, log out, create event)
//
// Not allowed here:
// - terminal input handling or drawing (see tui and widgets)
// - view construction beyond calling the view registry
package app
