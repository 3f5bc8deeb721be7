package slug

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/legalge/platform/internal/apperr"
	"gorm.io/gorm"
)

// Retries are finite in practice; the cap exists so a pathological data set
// fails loudly instead of looping.
const maxAttempts = 1000

// Scope describes where a slug must be unique. Base-table slugs are unique
// globally (Locale empty); translation slugs are unique per (table, locale).
// ExcludeID skips the row being edited so an unchanged slug is not a
// collision with itself.
type Scope struct {
	Table     string
	Locale    string
	ExcludeID uint
}

// EnsureUnique returns the candidate itself when free, otherwise the first
// free "-1", "-2", ... suffixed variant.
func EnsureUnique(db *gorm.DB, scope Scope, candidate string) (string, error) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", apperr.Validation("slug", "cannot resolve uniqueness for an empty slug")
	}

	current := candidate
	for i := 1; i <= maxAttempts; i++ {
		taken, err := exists(db, scope, current)
		if err != nil {
			return "", apperr.Store("slug uniqueness check", err)
		}
		if !taken {
			return current, nil
		}
		current = fmt.Sprintf("%s-%d", candidate, i)
	}

	return "", apperr.Conflict("no free slug for %q within %d attempts", candidate, maxAttempts)
}

func exists(db *gorm.DB, scope Scope, s string) (bool, error) {
	q := db.Table(scope.Table).Where("slug = ?", s)
	if scope.Locale != "" {
		q = q.Where("locale = ?", scope.Locale)
	}
	if scope.ExcludeID != 0 {
		q = q.Where("id <> ?", scope.ExcludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var suffixed = regexp.MustCompile(`^(.*)-(\d+)$`)

// Bump increments the numeric suffix of a slug, appending "-1" when there is
// none. Used when the storage layer reports a duplicate after the
// check-then-act window: the caller retries the write with the next suffix.
func Bump(s string) string {
	if m := suffixed.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			return fmt.Sprintf("%s-%d", m[1], n+1)
		}
	}
	return s + "-1"
}

// IsDuplicate reports whether err is a unique-constraint violation from the
// store. Matched textually as well since not every driver translates to
// gorm.ErrDuplicatedKey.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// CreateWithRetry resolves the candidate within scope, then runs create with
// the chosen slug. When the store's unique constraint fires inside the
// check-then-act window it bumps the suffix and tries again. Each attempt
// runs in its own (nested) transaction so a failed insert does not poison an
// enclosing one.
func CreateWithRetry(db *gorm.DB, scope Scope, candidate string, create func(tx *gorm.DB, slug string) error) (string, error) {
	s, err := EnsureUnique(db, scope, candidate)
	if err != nil {
		return "", err
	}

	const createAttempts = 5
	for attempt := 0; attempt < createAttempts; attempt++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			return create(tx, s)
		})
		if err == nil {
			return s, nil
		}
		if !IsDuplicate(err) {
			return "", apperr.Store("slugged create", err)
		}
		s = Bump(s)
	}

	return "", apperr.Conflict("slug %q kept colliding under concurrent writes", candidate)
}
