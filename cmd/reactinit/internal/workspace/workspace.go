// Package workspace materializes a resolved project onto a filesystem.
package workspace

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/go-drift/reactinit/cmd/reactinit/internal/scaffold"
)

// ManifestFile is the name of the package manifest at the project root.
const ManifestFile = "package.json"

// Workspace represents a generated project directory.
type Workspace struct {
	FS    billy.Filesystem
	Dir   string
	Files []string // project-relative paths, manifest included, sorted
}

// Path returns the filesystem path of a project-relative file.
func (w *Workspace) Path(rel string) string {
	return w.FS.Join(w.Dir, rel)
}

// Create writes the manifest and every file of files under dir. The
// directory must not exist yet. On failure the partially written
// directory is removed.
func Create(fsys billy.Filesystem, dir string, files scaffold.FileSet, manifest *scaffold.Manifest, logger *slog.Logger) (*Workspace, error) {
	if err := validateDirectory(dir); err != nil {
		return nil, err
	}
	if err := scaffold.CheckTarget(fsys, dir); err != nil {
		return nil, err
	}
	if err := files.Validate(); err != nil {
		return nil, scaffold.WriteFailure("refusing to write project: %w", err)
	}
	if _, ok := files[ManifestFile]; ok {
		return nil, scaffold.WriteFailure("file set must not contain %s", ManifestFile)
	}

	pkg, err := manifest.JSON()
	if err != nil {
		return nil, scaffold.WriteFailure("%w", err)
	}

	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, scaffold.WriteFailure("failed to create directory: %w", err)
	}

	ws := &Workspace{FS: fsys, Dir: dir}

	if err := ws.write(ManifestFile, pkg); err != nil {
		safeRemoveAll(fsys, dir)
		return nil, err
	}
	logger.Debug("wrote file", "path", ManifestFile)

	for _, rel := range files.Paths() {
		if err := ws.write(rel, []byte(files[rel])); err != nil {
			safeRemoveAll(fsys, dir)
			return nil, err
		}
		logger.Debug("wrote file", "path", rel)
	}

	ws.Files = append([]string{ManifestFile}, files.Paths()...)
	return ws, nil
}

func (w *Workspace) write(rel string, data []byte) error {
	full := w.Path(rel)
	if parent := path.Dir(rel); parent != "." {
		if err := w.FS.MkdirAll(w.Path(parent), 0o755); err != nil {
			return scaffold.WriteFailure("failed to create directory for %s: %w", rel, err)
		}
	}
	if err := util.WriteFile(w.FS, full, data, 0o644); err != nil {
		return scaffold.WriteFailure("failed to write %s: %w", rel, err)
	}
	return nil
}

// ReadFile reads a project-relative file.
func (w *Workspace) ReadFile(rel string) ([]byte, error) {
	return util.ReadFile(w.FS, w.Path(rel))
}

// WriteFile replaces a project-relative file.
func (w *Workspace) WriteFile(rel string, data []byte) error {
	return w.write(rel, data)
}

// validateDirectory rejects directories that would be dangerous to create
// or clean up: roots and the current or parent directory.
func validateDirectory(dir string) error {
	switch path.Clean(dir) {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	return nil
}

// safeRemoveAll removes a directory only if the path passes
// validateDirectory. It is called on cleanup paths where the original
// error must not be masked, so failures are ignored.
func safeRemoveAll(fsys billy.Filesystem, dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	_ = util.RemoveAll(fsys, dir)
}
