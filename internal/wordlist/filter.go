package wordlist

import (
	"strings"
	"unicode"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
// English keeps lowercase ASCII words; other languages keep words made of
// letters only.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en":
		return lowerASCII
	default:
		return lettersOnly
	}
}

func lowerASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

func lettersOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
