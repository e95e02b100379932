package migrate

import (
	"os"
	"path/filepath"
	"strings"
)

// DetectDialect guesses the migration dialect of a project from its
// artifact directories and build files. The guess is advisory: callers
// can always select a dialect explicitly. Absent any signal the first
// supported dialect wins.
func DetectDialect(root string) Dialect {
	if isDir(filepath.Join(root, "db", "changelog")) {
		return DialectChangelog
	}
	if isDir(filepath.Join(root, "db", "migration")) {
		return DialectVersionedSQL
	}
	for _, build := range []string{"pom.xml", "build.gradle", "build.gradle.kts"} {
		data, err := os.ReadFile(filepath.Join(root, build))
		if err != nil {
			continue
		}
		content := strings.ToLower(string(data))
		switch {
		case strings.Contains(content, "liquibase"):
			return DialectChangelog
		case strings.Contains(content, "flyway"):
			return DialectVersionedSQL
		}
	}
	return DialectVersionedSQL
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
