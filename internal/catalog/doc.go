// Package catalog loads the static station catalog the matcher searches.
//
// A catalog is an ordered, read-only list of stations. Two on-disk layouts
// are supported:
//
//   - JSON: an object keyed by station ID whose values carry name, stream and
//     image fields. Key order in the file is the catalog order.
//   - SQLite: a stations table ordered by its position column, produced by
//     WriteSQLite (or `emisora catalog convert`).
//
// A sample Spanish catalog is embedded in the binary and used when no path is
// configured. Entries without a name are skipped during load; entries without
// a stream URL are kept but never returned by searches.
package catalog
