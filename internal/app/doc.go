// Package app composes bookdeck: configuration, preferences, the catalog
// client, the session state store, and the terminal UI.
package app
