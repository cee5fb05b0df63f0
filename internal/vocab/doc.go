// Package vocab holds the keyword vocabularies used to read intent out of a
// phrase: the generic "radio" words and the phrases that name the Spanish
// radio provider explicitly.
//
// Vocabularies are plain tables keyed by language and Name. Matching works on
// normalized tokens: accents are stripped, case is folded, and anything that
// is not a letter or digit separates tokens. A vocabulary phrase matches when
// its tokens appear as a contiguous run in the phrase, so "radio" matches
// "pon la radio" but not "radiohead".
package vocab
