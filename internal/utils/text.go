package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsAny reports whether text contains any of the terms as a substring
func ContainsAny(text string, terms []string) bool {
	_, ok := FirstContained(text, terms)
	return ok
}

// FirstContained returns the first term, in slice order, that text contains
func FirstContained(text string, terms []string) (string, bool) {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return term, true
		}
	}
	return "", false
}

// IndexFold is strings.Index with ASCII case folding. The returned offset is
// a byte offset into s, so it can be used to slice the original-case text.
func IndexFold(s, substr string) int {
	n := len(substr)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

// HasWord reports whether word occurs in text delimited by non-alphanumerics
// on both sides. "eth" matches "eth price" but not "whether".
func HasWord(text, word string) bool {
	return indexWord(text, word, true) >= 0
}

// HasWordPrefix is HasWord with only the leading boundary enforced, so
// "stock" also matches "stocks" while still rejecting "photo" for "hot".
func HasWordPrefix(text, word string) bool {
	return indexWord(text, word, false) >= 0
}

// AnyWordPrefix reports whether any of the words matches with HasWordPrefix
func AnyWordPrefix(text string, words []string) bool {
	for _, w := range words {
		if HasWordPrefix(text, w) {
			return true
		}
	}
	return false
}

// CutAt truncates s at the first occurrence of any rune in cutset
func CutAt(s, cutset string) string {
	if i := strings.IndexAny(s, cutset); i >= 0 {
		return s[:i]
	}
	return s
}

func indexWord(text, word string, trailing bool) int {
	if word == "" {
		return -1
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return -1
		}
		start := offset + i
		end := start + len(word)
		if boundaryBefore(text, start) && (!trailing || boundaryAfter(text, end)) {
			return start
		}
		offset = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
