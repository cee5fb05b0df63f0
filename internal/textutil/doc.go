// Package textutil provides string similarity strategies used to rank station
// names against spoken or typed phrases.
//
// Three strategies are available:
//   - damerau_levenshtein: unrestricted Damerau-Levenshtein edit distance,
//     normalized by the longer input (the default)
//   - levenshtein: plain Levenshtein edit distance, normalized the same way
//   - token_cosine: cosine similarity between term-frequency fingerprints
//
// Every strategy returns a score in [0,1]. Edit distances are computed over
// runes, so accented station names ("Catalunya Ràdio") are measured by
// character rather than by byte.
package textutil
