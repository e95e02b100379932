// Package naming converts relational identifiers to code identifiers and
// back. Case conversion is acronym-aware (user_id -> UserID); pluralization
// follows a deliberately naive suffix rule so that schema and entity names
// round-trip predictably. The naive rule is lossy for irregular plurals
// ("categories" singularizes to "categorie") and that limitation is kept
// on purpose: callers that need a different mapping supply the table or
// class name explicitly.
package naming

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

// ruleset returns the capitalization ruleset used by Pascal and Camel.
func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	tm := []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "DTO", "EOF", "GB",
		"GUID", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC",
		"MB", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO",
		"TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID",
		"VM", "XML", "XSS",
	}
	for _, w := range tm {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// AddAcronym registers a word to be treated as an acronym by Pascal and
// Camel. It is not safe for concurrent use with conversions.
func AddAcronym(w string) {
	w = strings.ToUpper(w)
	acronyms[w] = struct{}{}
	rules.AddAcronym(w)
}

func isSeparator(r rune) bool { return r == '_' || r == '-' || unicode.IsSpace(r) }

// Pascal converts a snake_case identifier to PascalCase.
// Known acronyms are upper-cased as a whole: "api_url" -> "APIURL".
func Pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	return pascalWords(words)
}

func pascalWords(words []string) string {
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
			continue
		}
		words[i] = rules.Capitalize(w)
	}
	return strings.Join(words, "")
}

// Camel converts a snake_case identifier to camelCase: "full_name" ->
// "fullName", "user_id" -> "userID".
func Camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		return strings.ToLower(words[0][:1]) + words[0][1:]
	}
	return strings.ToLower(words[0]) + pascalWords(words[1:])
}

// Snake converts a PascalCase or camelCase identifier to snake_case,
// keeping acronym runs together: "HTTPCode" -> "http_code".
func Snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' if it is not a start or end of a word, the current letter
		// is uppercase, and the previous one is lowercase ("UserInfo"), or
		// the next one is lowercase and we are inside an acronym run
		// ("HTTPCode" -> "http_code").
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(rune(s[i-1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteString(strings.ToLower(string(r)))
	}
	return b.String()
}

// Pluralize appends a trailing "s" unless the name already ends in one.
// The rule is intentionally naive; see the package comment.
func Pluralize(s string) string {
	if strings.HasSuffix(s, "s") || strings.HasSuffix(s, "S") {
		return s
	}
	return s + "s"
}

// Singularize strips a trailing "s" unless it is preceded by another "s"
// ("address" stays "address"). The rule is intentionally naive; irregular
// plurals such as "categories" are not restored.
func Singularize(s string) string {
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") {
		return s[:len(s)-1]
	}
	return s
}
