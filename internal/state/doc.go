// Package state holds the session snapshot the UI renders: the most recent
// successfully fetched book list, the category options derived from it, and
// the last fetch error.
//
// List fetches are sequenced: every issued fetch takes a monotonically
// increasing sequence number from Begin, and Apply discards responses that
// are older than the latest issued request. Whatever order responses arrive
// in, the list on screen always belongs to the newest fetch.
package state
