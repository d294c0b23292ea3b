// Package setup prepares a React project for page generation: it checks the
// manifest and the routing dependency, and creates the pages/routes folder.
package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/inspect"
	"github.com/routegen/cli/internal/manifest"
	"github.com/routegen/cli/internal/output"
	"github.com/routegen/cli/internal/pkgmanager"
	"github.com/routegen/cli/internal/prompt"
)

// Prompt keys asked during setup.
const (
	KeyGenerateRoutes = "generateRoutes"
	KeyInstallRouter  = "installRouter"
	KeyHasFolder      = "hasFolder"
	KeyFolderKind     = "folderKind"
)

// FolderKinds are the folder names setup offers to create.
var FolderKinds = []string{"routes", "pages"}

// Installer adds a dependency to the project.
type Installer interface {
	Install(ctx context.Context, pkg string) (string, error)
}

// Options configures a setup run.
type Options struct {
	Root string

	// PackageManager, when set, is used instead of detection.
	PackageManager pkgmanager.Name

	// Installer is used when the routing dependency is missing. Nil means the
	// detected package manager.
	Installer Installer
}

// Result is what setup did.
type Result struct {
	PackageManager pkgmanager.Detection
	Installed      bool

	// CreatedFolder is the folder created relative to Root, if any.
	CreatedFolder string
}

// Run executes the setup flow. Declining the opening question returns
// ErrUserDeclined; a missing manifest, or a missing routing dependency the
// user does not install, is a precondition error.
func Run(ctx context.Context, opts Options, p prompt.Prompter, insp *inspect.Inspector) (*Result, error) {
	ok, err := p.Confirm(ctx, prompt.Confirm{
		Key:     KeyGenerateRoutes,
		Message: "Want to generate routes?",
		Default: false,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		output.Warn("Route generation cancelled.")
		return nil, oerrors.ErrUserDeclined
	}

	m, found := manifest.Read(opts.Root)
	if !found {
		return nil, oerrors.NewPreconditionError(
			fmt.Sprintf("no %s found", manifest.FileName),
			opts.Root,
			"Run the command from the root of your React project",
		)
	}
	log := output.ProjectLogger(projectName(m, opts.Root))

	res := &Result{PackageManager: pkgmanager.Detect(opts.Root, m)}
	if opts.PackageManager != "" {
		res.PackageManager = pkgmanager.Detection{Name: opts.PackageManager, Source: "override"}
	}

	if !m.HasDependency(inspect.RoutingDependency) {
		log.Error("React Router is not installed. Please install it to generate routes.")
		if err := installRouter(ctx, opts, p, res); err != nil {
			return nil, err
		}
	} else {
		log.Debug("routing dependency present", "package", inspect.RoutingDependency)
	}

	hasFolder, err := p.Confirm(ctx, prompt.Confirm{
		Key:     KeyHasFolder,
		Message: "Do you have a pages/routes folder?",
		Default: false,
	})
	if err != nil {
		return nil, err
	}
	if hasFolder {
		return res, nil
	}

	log.Info("No pages folder found. Will create one for you")
	folder, err := createFolder(ctx, opts.Root, p, insp)
	if err != nil {
		return nil, err
	}
	res.CreatedFolder = folder
	return res, nil
}

func installRouter(ctx context.Context, opts Options, p prompt.Prompter, res *Result) error {
	pm := res.PackageManager.Name
	install, err := p.Confirm(ctx, prompt.Confirm{
		Key:     KeyInstallRouter,
		Message: fmt.Sprintf("Install %s with %s?", inspect.RoutingDependency, pm),
		Default: true,
	})
	if err != nil {
		return err
	}
	if !install {
		return oerrors.NewPreconditionError(
			"Cannot proceed without React Router",
			filepath.Join(opts.Root, manifest.FileName),
			fmt.Sprintf("Install it with: %s %s", pm, strings.Join(pkgmanager.AddArgs(pm, inspect.RoutingDependency), " ")),
		)
	}

	installer := opts.Installer
	if installer == nil {
		installer = pkgmanager.NewInstaller(opts.Root, pm)
	}

	var report string
	err = output.RunWithSpinner(ctx, fmt.Sprintf("Installing %s", inspect.RoutingDependency), func(ctx context.Context) error {
		var err error
		report, err = installer.Install(ctx, inspect.RoutingDependency)
		return err
	})
	if err != nil {
		return err
	}

	if report != "" {
		output.Println(output.StyleDim.Render(report))
	}
	output.Success(fmt.Sprintf("Installed %s", inspect.RoutingDependency))
	res.Installed = true
	return nil
}

func createFolder(ctx context.Context, root string, p prompt.Prompter, insp *inspect.Inspector) (string, error) {
	kind, err := p.Select(ctx, prompt.Select{
		Key:     KeyFolderKind,
		Message: "Choose what to generate:",
		Options: prompt.Options(FolderKinds...),
		Default: FolderKinds[0],
	})
	if err != nil {
		return "", err
	}

	src, err := insp.DetectSourceDirectory(ctx)
	if err != nil {
		return "", err
	}

	rel := filepath.Join(src, kind)
	dir := filepath.Join(root, rel)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", oerrors.NewIOError(dir, err)
	}

	output.Success(fmt.Sprintf("%s folder created at %s", kind, output.StyleNoun.Render(rel)))
	return rel, nil
}

func projectName(m *manifest.Manifest, root string) string {
	if m.Name != "" {
		return m.Name
	}
	return filepath.Base(root)
}
