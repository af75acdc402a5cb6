package render

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ErrCommitted is returned when a Transaction is committed twice
var ErrCommitted = errors.New("transaction already committed")

// Transaction stages file writes and applies them all or none
type Transaction struct {
	files     []stagedFile
	committed bool
}

type stagedFile struct {
	path    string
	content []byte
	mode    os.FileMode
}

// backup is what a path held before the transaction touched it
type backup struct {
	path    string
	existed bool
	content []byte
	mode    os.FileMode
}

// NewTransaction creates an empty transaction
func NewTransaction() *Transaction {
	return &Transaction{}
}

// AddFile stages a write. Nothing touches the disk until Commit.
func (t *Transaction) AddFile(path string, content []byte, mode os.FileMode) {
	t.files = append(t.files, stagedFile{path: path, content: content, mode: mode})
}

// Paths lists the staged paths in order
func (t *Transaction) Paths() []string {
	paths := make([]string, len(t.files))
	for i, f := range t.files {
		paths[i] = f.path
	}
	return paths
}

// Commit writes every staged file. If a write fails, files written so far
// are restored: new files are removed and overwritten files get their
// previous content back.
func (t *Transaction) Commit() error {
	if t.committed {
		return ErrCommitted
	}

	done := make([]backup, 0, len(t.files))
	for _, f := range t.files {
		b, err := snapshot(f.path)
		if err != nil {
			restore(done)
			return err
		}

		dir := filepath.Dir(f.path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			restore(done)
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
		if err := os.WriteFile(f.path, f.content, f.mode); err != nil {
			restore(done)
			return errors.Wrapf(err, "failed to write file %s", f.path)
		}
		done = append(done, b)
	}

	t.committed = true
	return nil
}

// snapshot records the current state of path
func snapshot(path string) (backup, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return backup{path: path}, nil
	}
	if err != nil {
		return backup{}, errors.Wrapf(err, "failed to stat %s", path)
	}
	if info.IsDir() {
		return backup{}, errors.Newf("%s is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return backup{}, errors.Wrapf(err, "failed to read %s", path)
	}
	return backup{path: path, existed: true, content: content, mode: info.Mode().Perm()}, nil
}

// restore undoes writes in reverse order, best effort
func restore(done []backup) {
	for i := len(done) - 1; i >= 0; i-- {
		b := done[i]
		if b.existed {
			_ = os.WriteFile(b.path, b.content, b.mode)
		} else {
			_ = os.Remove(b.path)
		}
	}
}
