// Package ui implements the bookdeck terminal interface with Bubble Tea.
//
// The root Model owns all session UI state: the rendered book list snapshot,
// the active search query and category filter, the create-form draft, the
// loading/submitting flags, the single error banner, and the identifier of
// the one entry whose text summary is expanded. Network calls run as tea
// commands; their results come back as messages and are folded into the
// model on the event loop.
package ui
