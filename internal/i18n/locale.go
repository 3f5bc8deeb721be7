package i18n

// Supported locales. Georgian is the base language: every entity's base row
// is authored in it and translation rows override per locale.
const (
	LocaleKA = "ka"
	LocaleEN = "en"
	LocaleRU = "ru"
)

var supported = []string{LocaleKA, LocaleEN, LocaleRU}

func DefaultLocale() string { return LocaleKA }

func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

func IsSupported(locale string) bool {
	for _, l := range supported {
		if l == locale {
			return true
		}
	}
	return false
}

// Normalize returns the locale if supported, otherwise the default.
func Normalize(locale string) string {
	if IsSupported(locale) {
		return locale
	}
	return DefaultLocale()
}
