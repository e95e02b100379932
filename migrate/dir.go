package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	atlas "ariga.io/atlas/sql/migrate"
)

// WriteScript writes a rendered script below root, creating the
// dialect's target subdirectory as needed. The script lands at
// root/{script.Dir}/{script.FileName} and is never rewritten by a later
// run, since the version token is part of the name.
func WriteScript(root string, script *Script) error {
	target := filepath.Join(root, filepath.FromSlash(script.Dir))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("strata: creating migration dir: %w", err)
	}
	dir, err := atlas.NewLocalDir(target)
	if err != nil {
		return fmt.Errorf("strata: opening migration dir: %w", err)
	}
	if err := dir.WriteFile(script.FileName, []byte(script.Content)); err != nil {
		return fmt.Errorf("strata: writing %s: %w", script.FileName, err)
	}
	return nil
}
