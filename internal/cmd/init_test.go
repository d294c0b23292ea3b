package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/testutil"
)

func TestInit_Yes(t *testing.T) {
	p := testutil.NewProject(t).ReactApp()

	res := execute(t, "init", "--dir", p.Root, "--config", absentConfig(t), "--yes")

	require.NoError(t, res.err)
	assert.DirExists(t, p.Path("src", "routes"))
}

func TestInit_ConfiguredSourceDir(t *testing.T) {
	p := testutil.NewProject(t).ReactApp().Dir("client")

	res := execute(t, "init", "--dir", p.Root, "--config", absentConfig(t), "--yes", "--source-dir", "client")

	require.NoError(t, res.err)
	assert.DirExists(t, p.Path("client", "routes"))
	assert.NoDirExists(t, p.Path("src", "routes"))
}

func TestInit_DeclinedWithoutTerminal(t *testing.T) {
	p := testutil.NewProject(t).ReactApp()

	res := execute(t, "init", "--dir", p.Root, "--config", absentConfig(t))

	require.NoError(t, res.err)
	assert.NoDirExists(t, p.Path("src", "routes"))
}

func TestInit_MissingManifest(t *testing.T) {
	p := testutil.NewProject(t)

	res := execute(t, "init", "--dir", p.Root, "--config", absentConfig(t), "--yes")

	requireExitCode(t, res.err, oerrors.ExitGeneralError)
	assert.ErrorIs(t, res.err, oerrors.ErrPrecondition)
	assert.Contains(t, res.err.Error(), "package.json")
}

func TestInit_InvalidPackageManager(t *testing.T) {
	p := testutil.NewProject(t).ReactApp()

	res := execute(t, "init", "--dir", p.Root, "--config", absentConfig(t), "--yes", "--package-manager", "cargo")

	requireExitCode(t, res.err, oerrors.ExitValidationError)
	assert.Contains(t, res.err.Error(), "project.packageManager")
}
