package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// SlugOptions controls how slug uniqueness is checked in the DB.
type SlugOptions struct {
	// Table name, e.g. "properties"
	Table string
	// Slug column name, e.g. "property_slug"
	SlugColumn string

	// Max slug length including the -2, -3 suffix. 0 means DefaultSlugMaxLen.
	MaxLen int

	// Fallback base when the input normalizes to nothing.
	DefaultBase string
}

// GenerateSlug normalizes a title into a slug:
// - lower-case
// - spaces & non-alnum become "-"
// - collapse runs of "-" into one
// - trim "-" at both ends
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := b.String()
	out = strings.Trim(out, "-")

	reDash := regexp.MustCompile(`-+`)
	out = reDash.ReplaceAllString(out, "-")
	return out
}

func cutToLen(s string, n int) string {
	if n <= 0 {
		return s
	}
	if len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

// isTaken checks whether a slug candidate already exists (case-insensitive).
func isTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}

	var cnt int64
	err := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug builds a slug from base (or DefaultBase when empty),
// unique case-insensitively within the table.
//
// Algorithm:
// 1) try the bare base
// 2) on collision try base-2, base-3, ... until free.
//
// The slug column still needs a unique index; a concurrent loser
// re-probes via this function rather than overwriting the winner.
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	base = strings.TrimSpace(base)
	if base == "" {
		base = opts.DefaultBase
	}
	base = GenerateSlug(base)
	if base == "" {
		if opts.DefaultBase != "" {
			base = GenerateSlug(opts.DefaultBase)
		}
		if base == "" {
			base = "x"
		}
	}

	if len(base) > maxLen {
		base = cutToLen(base, maxLen)
		if base == "" {
			base = "x"
		}
	}

	taken, err := isTaken(db, opts, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; i < 10000; i++ {
		suf := fmt.Sprintf("-%d", i)
		candidate := base

		if len(candidate)+len(suf) > maxLen {
			cut := maxLen - len(suf)
			if cut < 1 {
				cut = 1
			}
			candidate = cutToLen(candidate, cut)
			if candidate == "" {
				candidate = "x"
			}
		}
		candidate = candidate + suf

		taken, err = isTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}

// IsUniqueViolation reports whether err looks like a unique-index
// conflict, so slug creation can re-probe and retry.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}
