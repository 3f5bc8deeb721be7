package i18n

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Apostrophes are dropped before separator substitution so "Tom's" becomes
// "toms" rather than "tom-s".
var apostrophes = strings.NewReplacer(
	"'", "",
	"’", "",
	"‘", "",
	"`", "",
	"\"", "",
	"“", "",
	"”", "",
	"«", "",
	"»", "",
)

// Slugify turns free text into a URL-safe slug for the given locale. Letters
// of any script and digits are kept, everything else collapses to single
// hyphens. Empty input yields an empty slug; callers must derive from the
// title instead, or reject the write.
func Slugify(text, locale string) string {
	text = apostrophes.Replace(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	lower := cases.Lower(languageTag(locale))
	text = lower.String(text)

	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

func languageTag(locale string) language.Tag {
	switch locale {
	case LocaleKA:
		return language.Georgian
	case LocaleRU:
		return language.Russian
	case LocaleEN:
		return language.English
	}
	return language.Und
}
