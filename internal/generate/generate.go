// Package generate coordinates a page generation run: it collects answers,
// checks the target folder, renders the page and hands it to the writer.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/inspect"
	"github.com/routegen/cli/internal/output"
	"github.com/routegen/cli/internal/prompt"
	"github.com/routegen/cli/internal/routes"
	"github.com/routegen/cli/internal/templates"
	"github.com/routegen/cli/internal/writer"
)

// Prompt keys asked by the orchestrator.
const (
	KeyFolder     = "folder"
	KeyName       = "name"
	KeyAPIPath    = "apiPath"
	KeyTemplate   = "template"
	KeyOverwrite  = "overwrite"
	KeyRouterFile = "routerFile"
)

// Options configures a run.
type Options struct {
	// Root is the project root.
	Root string

	// SourceDir is the source root the folder is checked under. Empty means "src".
	SourceDir string

	// Defaults offered by the questions.
	DefaultFolder   string
	DefaultTemplate templates.Kind
	DefaultAPIPath  string

	// ShowDiff previews the change before asking to overwrite.
	ShowDiff bool

	// Experimental asks for the router file after writing and lists its routes.
	Experimental bool
}

func (o Options) withDefaults() Options {
	if o.SourceDir == "" {
		o.SourceDir = inspect.DefaultSourceDir
	}
	if o.DefaultFolder == "" {
		o.DefaultFolder = "routes"
	}
	if !o.DefaultTemplate.IsValid() {
		o.DefaultTemplate = templates.DefaultKind
	}
	if o.DefaultAPIPath == "" {
		o.DefaultAPIPath = "/"
	}
	return o
}

// Result is what a run produced.
type Result struct {
	Spec    templates.PageSpec
	Content string
	Write   writer.Result

	// Routes are the routes found in the router file, when inspected.
	Routes     []routes.Route
	RouterFile string
}

// Orchestrator runs the generation state machine. It is single-use.
type Orchestrator struct {
	opts      Options
	prompter  prompt.Prompter
	inspector *inspect.Inspector
	guard     *writer.Guard

	// Trace records every state entered, in order.
	Trace []State

	folder  string
	name    string
	apiPath string
	kind    templates.Kind
	result  Result
}

// New creates an orchestrator. The inspector settles the source root and the
// extension at write time.
func New(opts Options, p prompt.Prompter, insp *inspect.Inspector) *Orchestrator {
	return &Orchestrator{
		opts:      opts.withDefaults(),
		prompter:  p,
		inspector: insp,
		guard:     writer.NewGuard(),
	}
}

// Run executes every state until Report or the first failure.
//
// A missing folder stops the run in ValidateFolder or Write with a not-found
// error. Other failures between CollectPageDetails and Write are wrapped in
// ErrGeneration. A declined overwrite is not a failure; Result.Write.Outcome is
// Cancelled.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	state := CollectFolder
	for state != done {
		o.Trace = append(o.Trace, state)
		output.Debug("generate", "state", state)

		next, err := o.step(ctx, state)
		if err != nil {
			return nil, o.fail(state, err)
		}
		state = next
	}
	return &o.result, nil
}

func (o *Orchestrator) fail(state State, err error) error {
	if !state.guarded() || errors.Is(err, oerrors.ErrNotFound) || errors.Is(err, oerrors.ErrUserDeclined) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", oerrors.ErrGeneration, state, err)
}

func (o *Orchestrator) step(ctx context.Context, state State) (State, error) {
	switch state {
	case CollectFolder:
		return ValidateFolder, o.collectFolder(ctx)
	case ValidateFolder:
		return CollectPageDetails, o.validateFolder()
	case CollectPageDetails:
		return Sanitize, o.collectPageDetails(ctx)
	case Sanitize:
		return Render, o.sanitize()
	case Render:
		o.result.Content = o.result.Spec.Render()
		return Write, nil
	case Write:
		if o.opts.Experimental {
			return InspectRouter, o.write(ctx)
		}
		return Report, o.write(ctx)
	case InspectRouter:
		return Report, o.inspectRouter(ctx)
	case Report:
		o.report()
		return done, nil
	}
	return done, fmt.Errorf("unknown state %d", state)
}

func (o *Orchestrator) collectFolder(ctx context.Context) error {
	folder, err := o.prompter.Input(ctx, prompt.Input{
		Key:      KeyFolder,
		Message:  "Enter the name of your pages/routes folder:",
		Default:  o.opts.DefaultFolder,
		Validate: templates.ValidateFolderName,
	})
	if err != nil {
		return err
	}
	o.folder = folder
	return nil
}

func (o *Orchestrator) validateFolder() error {
	dir := filepath.Join(o.opts.Root, o.opts.SourceDir, o.folder)
	if err := writer.RequireDir(dir); err != nil {
		output.Warn("Routes folder does not exist", "folder", o.folder, "path", dir)
		return err
	}
	return nil
}

func (o *Orchestrator) collectPageDetails(ctx context.Context) error {
	name, err := o.prompter.Input(ctx, prompt.Input{
		Key:      KeyName,
		Message:  "Name of the new page:",
		Validate: templates.ValidatePageName,
	})
	if err != nil {
		return err
	}

	apiPath, err := o.prompter.Input(ctx, prompt.Input{
		Key:     KeyAPIPath,
		Message: "Pathname of API:",
		Default: o.opts.DefaultAPIPath,
	})
	if err != nil {
		return err
	}

	options := make([]prompt.Option, 0, len(templates.List()))
	for _, t := range templates.List() {
		options = append(options, prompt.Option{
			Label: fmt.Sprintf("%s  %s", t.Kind, output.StyleDim.Render(t.Description)),
			Value: t.Kind.String(),
		})
	}
	kind, err := o.prompter.Select(ctx, prompt.Select{
		Key:     KeyTemplate,
		Message: "Type of page:",
		Options: options,
		Default: o.opts.DefaultTemplate.String(),
	})
	if err != nil {
		return err
	}

	o.name, o.apiPath, o.kind = name, apiPath, templates.Kind(kind)
	output.Debug("page details", "name", name, "apiPath", apiPath, "template", kind)
	return nil
}

func (o *Orchestrator) sanitize() error {
	spec, err := templates.NewPageSpec(o.name, o.folder, o.kind, o.apiPath, "")
	if err != nil {
		return err
	}
	o.result.Spec = spec
	return nil
}

// write settles the extension and the source root, then writes through the guard.
func (o *Orchestrator) write(ctx context.Context) error {
	pref, err := o.inspector.DetectTypeScriptPreferences(ctx)
	if err != nil {
		return err
	}
	o.result.Spec.Extension = pref.Extension()

	src, err := o.inspector.DetectSourceDirectory(ctx)
	if err != nil {
		return err
	}
	output.Debug("source directory", "dir", src)

	dir := filepath.Join(o.opts.Root, src, o.result.Spec.RouteFolder)
	res, err := o.guard.WritePage(ctx, dir, o.result.Spec.FileName(), o.result.Content, o.confirmOverwrite)
	if err != nil {
		return err
	}
	o.result.Write = res
	return nil
}

func (o *Orchestrator) confirmOverwrite(ctx context.Context, path string, existing []byte) (bool, error) {
	if o.opts.ShowDiff {
		output.Println(output.RenderDiff(o.relative(path), string(existing), o.result.Content))
	}
	return o.prompter.Confirm(ctx, prompt.Confirm{
		Key:     KeyOverwrite,
		Message: fmt.Sprintf("The file %s already exists. Do you want to overwrite it?", filepath.Base(path)),
		Default: false,
	})
}

// inspectRouter lists routes in the router file. A missing file ends the run
// cleanly without routes.
func (o *Orchestrator) inspectRouter(ctx context.Context) error {
	location, err := o.prompter.Input(ctx, prompt.Input{
		Key:      KeyRouterFile,
		Message:  "Where is your router file located?",
		Default:  routes.DefaultRouterFile,
		Validate: templates.ValidateDirectoryName,
	})
	if err != nil {
		return err
	}

	found, err := routes.InspectFile(filepath.Join(o.opts.Root, location))
	if errors.Is(err, oerrors.ErrNotFound) {
		output.Error(fmt.Sprintf("Router file at %s does not exist!", location))
		return nil
	}
	if err != nil {
		return err
	}

	o.result.RouterFile = location
	o.result.Routes = found
	return nil
}

func (o *Orchestrator) report() {
	res := o.result
	output.Println(output.FormatFileLine(o.relative(res.Write.Path), res.Write.Outcome.String()))

	switch res.Write.Outcome {
	case writer.Cancelled:
		output.Warn("Page generation cancelled.")
	case writer.Unchanged:
		output.Info(fmt.Sprintf("Page %s is already up to date.", res.Spec.CapitalizedName))
	default:
		output.Success(fmt.Sprintf("Page %s generated successfully.", res.Spec.CapitalizedName))
	}

	if res.RouterFile == "" {
		return
	}
	if len(res.Routes) == 0 {
		output.Info("No routes found", "file", res.RouterFile)
		return
	}
	output.Info(fmt.Sprintf("Found %d routes", len(res.Routes)), "file", res.RouterFile)
	for _, r := range res.Routes {
		output.Println(fmt.Sprintf("  %s:%d  %s  %s", res.RouterFile, r.Line, output.StyleNoun.Render(r.Path), r.Element))
	}
}

func (o *Orchestrator) relative(path string) string {
	if rel, err := filepath.Rel(o.opts.Root, path); err == nil {
		return rel
	}
	return path
}
