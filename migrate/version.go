package migrate

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowercase = cases.Lower(language.Und)

// Version derives the monotonic version token for a migration generated
// at t. Tokens order lexically by generation instant.
func Version(t time.Time) string {
	return t.UTC().Format("20060102150405")
}

// Slug converts a free-form description into a lowercase underscore
// slug usable in a migration file name.
func Slug(desc string) string {
	desc = lowercase.String(strings.TrimSpace(desc))
	var b strings.Builder
	b.Grow(len(desc))
	pending := false
	for _, r := range desc {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
