package i18n

import (
	"encoding/json"
	"strings"

	"github.com/legalge/platform/internal/apperr"
	"gorm.io/datatypes"
)

// PickString implements the per-field fallback rule: a translation value that
// is non-empty after trimming wins, otherwise the base value stands.
func PickString(translated, base string) string {
	if strings.TrimSpace(translated) != "" {
		return translated
	}
	return base
}

// PickJSON applies the same rule to JSON-encoded composite fields. The chosen
// side wins wholesale; the loser's JSON is discarded, never deep-merged.
func PickJSON(translated, base datatypes.JSON) datatypes.JSON {
	if !jsonEmpty(translated) {
		return translated
	}
	return base
}

func jsonEmpty(v datatypes.JSON) bool {
	s := strings.TrimSpace(string(v))
	return s == "" || s == "null"
}

// CheckJSON validates a composite payload at the write boundary. Malformed
// documents are rejected before they reach storage or the merge, so the
// store's column type never gets to report them as an opaque failure.
func CheckJSON(field string, v datatypes.JSON) error {
	if jsonEmpty(v) {
		return nil
	}
	if !json.Valid(v) {
		return apperr.Validation(field, "must be valid JSON")
	}
	return nil
}
