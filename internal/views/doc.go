// Package views is the view registry: pure builders that turn a resolved
// route, the session and application data into a typed view descriptor.
//
// Allowed here:
// - view descriptors (blocks, forms, dashboard chrome) and region ids
// - builders reading session and data at render time
//
// Not allowed here:
// - mutation of session or data, I/O, behavior wiring
// - terminal rendering (see widgets)
package views
