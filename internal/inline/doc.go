// Package inline turns report text into styled runs.
//
// Content fields are plain strings that may carry inline Markdown
// emphasis (**bold**, *italic*). Text is first cleaned (line endings,
// dashes, whitespace) and then parsed with Goldmark restricted to the
// paragraph block parser, so a leading "- " or "1." stays literal text
// instead of becoming a list.
package inline
