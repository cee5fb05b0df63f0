// Package matcher ranks catalog stations against a free-text phrase.
//
// A Matcher blends two intent signals with name similarity. The host's intent
// hint adds a bonus when the query was already classified as radio and a
// penalty otherwise. Mentioning radio in the phrase adds a smaller bonus, and
// naming the provider itself adds a large one (the provider words are then
// removed so they do not dilute the similarity). Each playable station is
// scored as base + similarity*100, rounded half to even; scores below the
// configured minimum are dropped and the rest are capped at the maximum
// confidence.
//
// Matchers are immutable after construction and safe for concurrent use.
package matcher
