// Package notify fans out "recipes of user N changed" signals.
//
// A signal carries no payload: subscribers re-read whatever they show.
// Signals are coalesced per subscriber, so a slow reader sees one pending
// signal no matter how many writes happened meanwhile.
package notify
