// Package media defines the fixed-shape records handed to a playback front
// end: single live-stream entries and playlists of entries.
//
// Field names and enum values follow the common-play conventions of the host
// the results are consumed by, so a serialized Entry can be passed along
// without translation.
package media
