package migrate

import "path"

// Dialect selects the migration output syntax.
type Dialect string

// Supported dialects. DialectVersionedSQL emits a timestamp-ordered
// plain-SQL script; DialectChangelog emits a structured XML changeset.
const (
	DialectVersionedSQL Dialect = "versioned-sql"
	DialectChangelog    Dialect = "changelog"
)

// Script is a rendered migration: terminal, written once to a
// deterministic path and never mutated.
type Script struct {
	// Dialect is the dialect the script was rendered in.
	Dialect Dialect
	// Version is the monotonic version token.
	Version string
	// Description is the human-readable description.
	Description string
	// Content is the rendered script body.
	Content string
	// Dir is the target subdirectory relative to the project root.
	Dir string
	// FileName is the script file name inside Dir.
	FileName string
}

// Path returns the script path relative to the project root.
func (s *Script) Path() string {
	return path.Join(s.Dir, s.FileName)
}

// renderers maps each supported dialect to its rendering function.
var renderers = map[Dialect]func(*Delta, string) *Script{
	DialectVersionedSQL: renderSQL,
	DialectChangelog:    renderChangelog,
}

// Render translates an ordered delta into a migration script. Unknown
// dialects fail with UnsupportedDialectError. An empty delta renders an
// empty-statement script rather than failing; callers filter no-op
// migrations through Diff's nil result.
func Render(delta *Delta, dialect Dialect, version string) (*Script, error) {
	render, ok := renderers[dialect]
	if !ok {
		return nil, NewUnsupportedDialectError(dialect)
	}
	if delta == nil {
		delta = &Delta{}
	}
	return render(delta, version), nil
}
