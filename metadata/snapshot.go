package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/strata/naming"
)

// SnapshotStore persists entity metadata snapshots on disk, one file per
// class. Stored snapshots are the "old" side of a schema diff: the store
// is written after each successful generation and read before the next.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore returns a store rooted at dir. The directory is
// created on first save.
func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

// Path returns the snapshot file path for a class name.
func (s *SnapshotStore) Path(className string) string {
	return filepath.Join(s.dir, naming.Snake(className)+".snapshot")
}

// Save persists the snapshot for its class, replacing any previous one.
func (s *SnapshotStore) Save(md *EntityMetadata) error {
	if md.ClassName == "" {
		return NewInvalidMetadataError("", "class name")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("strata: creating snapshot dir: %w", err)
	}
	data, err := msgpack.Marshal(md)
	if err != nil {
		return fmt.Errorf("strata: encoding snapshot for %s: %w", md.ClassName, err)
	}
	return os.WriteFile(s.Path(md.ClassName), data, 0o644)
}

// Load reads the stored snapshot for a class. It returns os.ErrNotExist
// (wrapped) when no snapshot has been saved yet; callers treat that as
// "no previous version" rather than a failure.
func (s *SnapshotStore) Load(className string) (*EntityMetadata, error) {
	data, err := os.ReadFile(s.Path(className))
	if err != nil {
		return nil, err
	}
	var md EntityMetadata
	if err := msgpack.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("strata: decoding snapshot for %s: %w", className, err)
	}
	return &md, nil
}

// List returns the class names with a stored snapshot, in file order.
func (s *SnapshotStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var classes []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".snapshot" {
			continue
		}
		classes = append(classes, naming.Pascal(name[:len(name)-len(".snapshot")]))
	}
	return classes, nil
}
