package writer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/routegen/cli/internal/errors"
)

func confirmWith(answer bool, calls *int) ConfirmFunc {
	return func(_ context.Context, _ string, _ []byte) (bool, error) {
		*calls++
		return answer, nil
	}
}

func TestWritePage_NewFile(t *testing.T) {
	dir := t.TempDir()
	calls := 0

	res, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "content\n", confirmWith(false, &calls))

	require.NoError(t, err)
	assert.Equal(t, Written, res.Outcome)
	assert.Equal(t, filepath.Join(dir, "Home.tsx"), res.Path)
	assert.Equal(t, 0, calls, "confirm must not be asked for new files")

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, "content\n", string(data))
}

func TestWritePage_RejectsNamesOutsideTarget(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "src", "routes")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	tests := []struct {
		name     string
		fileName string
	}{
		{"parent traversal", "../../../escaped.tsx"},
		{"one level up", "../Escaped.tsx"},
		{"nested folder", filepath.Join("nested", "Page.jsx")},
		{"dot", "."},
		{"dot dot", ".."},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0

			_, err := NewGuard().WritePage(context.Background(), dir, tt.fileName, "x\n", confirmWith(true, &calls))

			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrValidation)
			assert.Equal(t, 0, calls)
		})
	}

	assert.NoFileExists(t, filepath.Join(root, "..", "escaped.tsx"))
	assert.NoFileExists(t, filepath.Join(root, "src", "Escaped.tsx"))
	assert.NoDirExists(t, filepath.Join(dir, "nested"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWritePage_DeclinedLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Home.tsx")
	original := []byte("original\x00bytes\n")
	require.NoError(t, os.WriteFile(path, original, 0o644))
	calls := 0

	res, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "replacement\n", confirmWith(false, &calls))

	require.NoError(t, err)
	assert.Equal(t, Cancelled, res.Outcome)
	assert.Equal(t, 1, calls)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestWritePage_NilConfirmDeclines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Home.tsx")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))

	res, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "replace", nil)

	require.NoError(t, err)
	assert.Equal(t, Cancelled, res.Outcome)
}

func TestWritePage_ConfirmedReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Home.tsx")
	require.NoError(t, os.WriteFile(path, []byte("a much longer original content\n"), 0o644))
	calls := 0

	res, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "new\n", confirmWith(true, &calls))

	require.NoError(t, err)
	assert.Equal(t, Overwritten, res.Outcome)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWritePage_ConfirmedIdenticalContentIsUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Home.tsx")
	require.NoError(t, os.WriteFile(path, []byte("same\n"), 0o644))
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, old, old))
	calls := 0

	res, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "same\n", confirmWith(true, &calls))

	require.NoError(t, err)
	assert.Equal(t, Unchanged, res.Outcome)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, 1, calls)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "identical content must not be rewritten")
}

func TestWritePage_ConfirmReceivesExistingContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Home.tsx"), []byte("old"), 0o644))

	var seen []byte
	confirm := func(_ context.Context, _ string, existing []byte) (bool, error) {
		seen = existing
		return false, nil
	}

	_, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "new", confirm)
	require.NoError(t, err)
	assert.Equal(t, "old", string(seen))
}

func TestWritePage_ConfirmErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Home.tsx"), []byte("old"), 0o644))

	confirm := func(context.Context, string, []byte) (bool, error) {
		return false, oerrors.ErrUserDeclined
	}

	_, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "new", confirm)
	assert.ErrorIs(t, err, oerrors.ErrUserDeclined)
}

func TestWritePage_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "x", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.ErrorIs(t, err, oerrors.ErrPrecondition)
	assert.NoDirExists(t, dir)
}

func TestWritePage_TargetIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "routes")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := NewGuard().WritePage(context.Background(), file, "Home.tsx", "x", nil)

	assert.ErrorIs(t, err, oerrors.ErrPrecondition)
	assert.False(t, errors.Is(err, oerrors.ErrIO))
}

func TestWritePage_WriteFailureIsIOError(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the write itself fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Home.tsx"), 0o755))

	_, err := NewGuard().WritePage(context.Background(), dir, "Home.tsx", "x", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrIO)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "created", Written.String())
	assert.Equal(t, "overwritten", Overwritten.String())
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.Equal(t, "unchanged", Unchanged.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
