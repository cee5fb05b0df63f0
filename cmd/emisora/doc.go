// Package main hosts the emisora CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration (after applying any .env
// file in the working directory), opens the station catalog, and exposes the
// matcher: ranked searches, the featured playlist, the keyword lists for a
// host classifier, plus catalog conversion and configuration scaffolding.
//
// Keep this package lean: new behaviour belongs in the internal packages and
// is only surfaced here through commands or flags.
package main
