package text

import "unicode"

// Language identifies the detected primary language of a document. The set
// matches the numbering-pattern tables the heading classifier carries;
// anything else falls back to English behavior.
type Language int

const (
	English Language = iota
	Japanese
	Spanish
	French
)

// String returns the BCP 47 style tag for the language.
func (l Language) String() string {
	switch l {
	case Japanese:
		return "ja"
	case Spanish:
		return "es"
	case French:
		return "fr"
	default:
		return "en"
	}
}

// Diacritic sets used to separate Spanish and French from plain English.
// Spanish is checked before French: ü belongs to both sets and the Spanish
// reading wins for that shared mark.
const (
	spanishDiacritics = "ñáéíóúü"
	frenchDiacritics  = "àâäéèêëïîôöùûüÿç"
)

// DetectLanguage analyzes a text sample and returns its dominant language
// based on Unicode character classes. Japanese requires more than 10% of
// the sampled letters to be kana or kanji; Spanish and French trigger on
// any occurrence of their diacritic sets. The sample is expected to be
// pre-bounded by the caller; detection is a single linear pass.
func DetectLanguage(sample string) Language {
	if sample == "" {
		return English
	}

	total := 0
	japanese := 0
	spanish := 0
	french := 0

	for _, r := range sample {
		total++
		lower := unicode.ToLower(r)
		switch {
		case IsJapanese(r):
			japanese++
		case containsRune(spanishDiacritics, lower):
			spanish++
		case containsRune(frenchDiacritics, lower):
			french++
		}
	}

	if total == 0 {
		return English
	}
	if float64(japanese) > float64(total)*0.1 {
		return Japanese
	}
	if spanish > 0 {
		return Spanish
	}
	if french > 0 {
		return French
	}
	return English
}

// IsJapanese reports whether r is in a Japanese script block.
// This includes:
//   - Hiragana: U+3040-U+309F
//   - Katakana: U+30A0-U+30FF
//   - CJK Unified Ideographs: U+4E00-U+9FAF
func IsJapanese(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0x4E00 && r <= 0x9FAF)
}

// HasJapanese reports whether the string contains any Japanese script rune.
func HasJapanese(s string) bool {
	for _, r := range s {
		if IsJapanese(r) {
			return true
		}
	}
	return false
}

func containsRune(set string, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
