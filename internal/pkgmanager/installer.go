package pkgmanager

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/routegen/cli/internal/output"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, dir, name string, args []string) (stdout, stderr []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, dir, name string, args []string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Installer adds dependencies to a project.
type Installer struct {
	// Dir is the project root the command runs in.
	Dir string

	// Manager is the package manager binary to invoke.
	Manager Name

	exec executor
}

// NewInstaller returns an Installer that runs the real package manager.
func NewInstaller(dir string, manager Name) *Installer {
	return &Installer{Dir: dir, Manager: manager, exec: &osExecutor{}}
}

// Install adds pkg and returns the package manager's report.
// The exit status decides success. On a non-zero exit stderr is carried in the
// error; on a zero exit it is logged as warnings, since npm and yarn print
// deprecation notices there.
func (i *Installer) Install(ctx context.Context, pkg string) (string, error) {
	bin := i.Manager.String()
	if _, err := i.exec.LookPath(bin); err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", bin, err)
	}

	args := AddArgs(i.Manager, pkg)
	output.Debug("running package manager", "cmd", bin+" "+strings.Join(args, " "), "dir", i.Dir)

	stdout, stderr, err := i.exec.Run(ctx, i.Dir, bin, args)
	msg := strings.TrimSpace(string(stderr))
	if err != nil {
		if msg != "" {
			return "", fmt.Errorf("installing %s with %s: %w: %s", pkg, bin, err, msg)
		}
		return "", fmt.Errorf("installing %s with %s: %w", pkg, bin, err)
	}
	for _, line := range strings.Split(msg, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			output.Warn(line, "manager", bin)
		}
	}

	return strings.TrimSpace(string(stdout)), nil
}
