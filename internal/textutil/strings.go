// Package textutil provides the lexical helpers shared by the matcher,
// the reply cascade and the translator: normalization, script detection,
// phrase containment and markup stripping.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Tamil Unicode block bounds. The range is half-open: TamilBlockEnd is the
// first rune past the block.
const (
	TamilBlockStart rune = 0x0B80
	TamilBlockEnd   rune = 0x0C00
)

var markupTagRegex = regexp.MustCompile(`<[^>]+>`)

// Normalize prepares text for matching: NFC composition, surrounding
// whitespace removed, lowercased. It never fails; empty input yields "".
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// IsTamil reports whether s contains at least one rune in the Tamil block.
// This is a block check, not language detection.
func IsTamil(s string) bool {
	for _, r := range s {
		if r >= TamilBlockStart && r < TamilBlockEnd {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any phrase occurs as a substring of text.
// Matching is plain containment, so "fee" matches "coffee".
func ContainsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// FirstContained returns the first phrase (in slice order) contained in text.
func FirstContained(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return p, true
		}
	}
	return "", false
}

// StripTags removes inline markup tags such as <b>, <br> and <a href=...>.
// Tag contents between opening and closing tags are kept.
func StripTags(s string) string {
	return markupTagRegex.ReplaceAllString(s, "")
}
