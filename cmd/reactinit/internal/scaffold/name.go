package scaffold

import (
	"errors"
	"io/fs"
	"regexp"

	"github.com/go-git/go-billy/v5"
	"github.com/gosimple/slug"
)

var validProjectName = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateName checks that name contains only letters, digits, hyphens
// and underscores. The name doubles as the directory name, so anything
// else (spaces, separators, dots) is rejected.
func ValidateName(name string) error {
	if name == "" {
		return InvalidName("project name cannot be empty")
	}
	if validProjectName.MatchString(name) {
		return nil
	}
	if s := SuggestName(name); s != "" {
		return InvalidName("invalid name %q: use letters, numbers, - and _ (try %q)", name, s)
	}
	return InvalidName("invalid name %q: use letters, numbers, - and _", name)
}

// SuggestName returns a valid name derived from name, or "" when nothing
// usable is left after slugifying it.
func SuggestName(name string) string {
	s := slug.Make(name)
	if s == "" || s == name || !validProjectName.MatchString(s) {
		return ""
	}
	return s
}

// CheckTarget fails with KindAlreadyExists when dir is present in fsys.
func CheckTarget(fsys billy.Basic, dir string) error {
	_, err := fsys.Stat(dir)
	switch {
	case err == nil:
		return AlreadyExists("folder %q already exists", dir)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return WriteFailure("failed to inspect %q: %w", dir, err)
	}
}
