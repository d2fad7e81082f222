// Package catalog defines the book catalog data model and the HTTP client
// that talks to the catalog backend.
//
// The backend owns persistence, validation rules, and id generation; this
// package holds read-only snapshots of its records plus the transient Draft
// used to stage a new book. All requests honor the caller's context and a
// fixed per-request timeout.
package catalog
