package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/testutil"
)

func absentConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestGenerate_WritesPage(t *testing.T) {
	p := testutil.NewProject(t).ReactApp().Dir("src/routes")

	res := execute(t, "generate", "--dir", p.Root, "--config", absentConfig(t),
		"--name", "dashboard", "--api-path", "/api/dashboard", "--ext", "tsx", "--yes")
	require.NoError(t, res.err)

	content := p.Read("src/routes/Dashboard.tsx")
	assert.Contains(t, content, "const Dashboard = () => {")
	assert.Contains(t, content, "fetch('/api/api/dashboard')")
	assert.Contains(t, res.stdout, "Dashboard.tsx")
}

func TestGenerate_TemplateFlag(t *testing.T) {
	p := testutil.NewProject(t).ReactApp().Dir("src/routes")

	res := execute(t, "generate", "--dir", p.Root, "--config", absentConfig(t),
		"--name", "missing", "--template", "notFound", "--ext", "jsx", "--yes")
	require.NoError(t, res.err)

	content := p.Read("src/routes/Missing.jsx")
	assert.Contains(t, content, "Missing")
	assert.NotContains(t, content, "fetch(")
}

func TestGenerate_ConfiguredDefaults(t *testing.T) {
	p := testutil.NewProject(t).ReactApp().Dir("app/pages").File("app/index.jsx", "")
	cfg := testutil.NewProject(t).File("config.yaml",
		"project:\n  sourceDir: app\n  extension: jsx\ngenerate:\n  routesFolder: pages\n  template: layout\n")

	res := execute(t, "generate", "--dir", p.Root, "--config", cfg.Path("config.yaml"), "--name", "shell", "--yes")
	require.NoError(t, res.err)

	content := p.Read("app/pages/Shell.jsx")
	assert.Contains(t, content, "<header>")
}

func TestGenerate_MissingFolder(t *testing.T) {
	p := testutil.NewProject(t).ReactApp()

	res := execute(t, "generate", "--dir", p.Root, "--config", absentConfig(t), "--name", "dashboard", "--yes")

	requireExitCode(t, res.err, oerrors.ExitGeneralError)
	assert.ErrorIs(t, res.err, oerrors.ErrNotFound)
	assert.NoFileExists(t, p.Path("src/routes/Dashboard.jsx"))
}

func TestGenerate_MissingNameWithoutTerminal(t *testing.T) {
	p := testutil.NewProject(t).ReactApp().Dir("src/routes")

	res := execute(t, "generate", "--dir", p.Root, "--config", absentConfig(t))

	requireExitCode(t, res.err, oerrors.ExitValidationError)
	assert.Contains(t, res.err.Error(), "name")
}

func TestGenerate_PathLikeNameRejected(t *testing.T) {
	p := testutil.NewProject(t).ReactApp().Dir("src/routes")

	res := execute(t, "generate", "--dir", p.Root, "--config", absentConfig(t),
		"--name", "../../escaped", "--ext", "tsx", "--yes")

	requireExitCode(t, res.err, oerrors.ExitValidationError)
	assert.Contains(t, res.err.Error(), "path separators")
	assert.NoFileExists(t, filepath.Join(p.Root, "..", "Escaped.tsx"))
	assert.NoFileExists(t, p.Path("Escaped.tsx"))
}

func TestGenerate_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "template", args: []string{"--template", "fancy"}, want: "generate.template"},
		{name: "extension", args: []string{"--ext", "ts"}, want: "project.extension"},
		{name: "source dir", args: []string{"--source-dir", "../up"}, want: "project.sourceDir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.NewProject(t).ReactApp().Dir("src/routes")
			args := append([]string{"generate", "--dir", p.Root, "--config", absentConfig(t), "--name", "x", "--yes"}, tt.args...)

			res := execute(t, args...)

			requireExitCode(t, res.err, oerrors.ExitValidationError)
			assert.Contains(t, res.err.Error(), tt.want)
		})
	}
}

func TestGenerate_ExistingFile(t *testing.T) {
	args := func(p *testutil.Project, extra ...string) []string {
		return append([]string{"generate", "--dir", p.Root, "--config", absentConfig(t),
			"--name", "dashboard", "--ext", "jsx", "--yes"}, extra...)
	}

	t.Run("kept without force", func(t *testing.T) {
		p := testutil.NewProject(t).ReactApp().File("src/routes/Dashboard.jsx", "old\n")

		res := execute(t, args(p)...)

		require.NoError(t, res.err)
		assert.Equal(t, "old\n", p.Read("src/routes/Dashboard.jsx"))
		assert.Contains(t, res.stdout, "cancelled")
	})

	t.Run("replaced with force", func(t *testing.T) {
		p := testutil.NewProject(t).ReactApp().File("src/routes/Dashboard.jsx", "old\n")

		res := execute(t, args(p, "--force")...)

		require.NoError(t, res.err)
		assert.Contains(t, p.Read("src/routes/Dashboard.jsx"), "const Dashboard")
		assert.Contains(t, res.stdout, "overwritten")
	})
}

func TestGenerate_Experimental(t *testing.T) {
	p := testutil.NewProject(t).ReactApp().Dir("src/routes").
		File("src/router.jsx", `import { createBrowserRouter } from 'react-router-dom'

export const router = createBrowserRouter([
  { path: '/', element: <Home /> },
  { path: '/dashboard', element: <Dashboard /> },
])
`)

	res := execute(t, "generate", "--dir", p.Root, "--config", absentConfig(t),
		"--name", "dashboard", "--ext", "jsx", "--yes", "-e", "--router-file", "src/router.jsx")
	require.NoError(t, res.err)

	assert.FileExists(t, p.Path("src/routes/Dashboard.jsx"))
	assert.Contains(t, res.stdout, "/dashboard")
}
