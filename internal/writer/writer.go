// Package writer writes generated pages to disk behind an overwrite guard.
package writer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/output"
)

// Outcome is the result of a guarded write.
type Outcome int

const (
	// Written means a new file was created.
	Written Outcome = iota

	// Overwritten means an existing file was replaced after confirmation.
	Overwritten

	// Cancelled means the file existed and replacing it was declined.
	Cancelled

	// Unchanged means replacing was confirmed but the file already held the content.
	Unchanged
)

// String returns the status word used in file reports.
func (o Outcome) String() string {
	switch o {
	case Written:
		return output.StatusCreated
	case Overwritten:
		return output.StatusOverwritten
	case Cancelled:
		return output.StatusCancelled
	case Unchanged:
		return output.StatusUnchanged
	default:
		return "unknown"
	}
}

// ConfirmFunc decides whether an existing file may be replaced.
// It receives the current content so callers can preview the change.
type ConfirmFunc func(ctx context.Context, path string, existing []byte) (bool, error)

// Result describes a completed guarded write.
type Result struct {
	Path    string
	Outcome Outcome
}

// Guard writes files without silently replacing existing ones.
type Guard struct {
	// FileMode is used for new files. Zero means 0o644.
	FileMode fs.FileMode
}

// NewGuard returns a Guard with default permissions.
func NewGuard() *Guard {
	return &Guard{FileMode: 0o644}
}

// WritePage writes content to targetDir/fileName.
//
// targetDir must already exist and fileName must be a bare file name; the page is
// never written outside targetDir. When the file exists, confirm decides whether it
// is replaced; a nil confirm declines. Declining leaves the file untouched and
// returns Cancelled with a nil error.
func (g *Guard) WritePage(ctx context.Context, targetDir, fileName, content string, confirm ConfirmFunc) (Result, error) {
	if err := RequireDir(targetDir); err != nil {
		return Result{}, err
	}

	path, err := pathWithin(targetDir, fileName)
	if err != nil {
		return Result{}, err
	}
	outcome := Written

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		ok := false
		if confirm != nil {
			ok, err = confirm(ctx, path, existing)
			if err != nil {
				return Result{}, err
			}
		}
		if !ok {
			output.Debug("overwrite declined", "path", path)
			return Result{Path: path, Outcome: Cancelled}, nil
		}
		if bytes.Equal(existing, []byte(content)) {
			output.Debug("content identical, skipping write", "path", path)
			return Result{Path: path, Outcome: Unchanged}, nil
		}
		output.Info("Overwriting file", "path", path)
		outcome = Overwritten
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Result{}, oerrors.NewIOError(path, err)
	}

	mode := g.FileMode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return Result{}, oerrors.NewIOError(path, err)
	}

	output.Debug("wrote page", "path", path, "bytes", len(content))
	return Result{Path: path, Outcome: outcome}, nil
}

// pathWithin joins a bare file name onto dir. Names carrying separators or
// resolving outside dir are rejected.
func pathWithin(dir, fileName string) (string, error) {
	invalid := func() error {
		return oerrors.NewValidationError(
			fmt.Sprintf("file name %q must be a plain name inside %s", fileName, dir),
			"Use a page name that is a single identifier, such as dashboard.",
		)
	}

	if fileName == "" || fileName == "." || fileName == ".." ||
		strings.ContainsAny(fileName, `/\`) || fileName != filepath.Base(fileName) {
		return "", invalid()
	}

	path := filepath.Join(dir, fileName)
	rel, err := filepath.Rel(filepath.Clean(dir), path)
	if err != nil || rel != fileName {
		return "", invalid()
	}
	return path, nil
}

// RequireDir returns a not-found precondition error unless dir is an existing directory.
func RequireDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return oerrors.NewNotFoundError(
			fmt.Sprintf("directory %s does not exist", dir),
			dir,
			"Run the init command or create your folder",
		)
	case err != nil:
		return oerrors.NewIOError(dir, err)
	case !info.IsDir():
		return oerrors.NewPreconditionError(fmt.Sprintf("%s is not a directory", dir), dir, "")
	}
	return nil
}
