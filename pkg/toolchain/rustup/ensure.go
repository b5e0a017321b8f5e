package rustup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/project-a/buildtool/pkg/toolchain"
)

// installDirName is the private install directory created beside the
// project root when rustup has to be bootstrapped.
const installDirName = ".rust-install"

// EnsureOptions configures Ensure.
type EnsureOptions struct {
	// ProjectDir is the project root the private install directory and the
	// optional rust-toolchain.toml pin file live in. Defaults to the
	// current working directory.
	ProjectDir string
	// Client is the HTTP client used for a bootstrap download.
	Client *http.Client
	// BaseURL overrides the rustup dist server location.
	BaseURL string
}

// Ensure produces a usable rustup installation. It first probes the
// rustup on the ambient search path; if that launch fails it falls back
// to the private install directory, downloading and running the installer
// only when the directory does not exist yet. The RUSTUP_HOME and
// CARGO_HOME overrides are established on every fallback entry, even when
// the directory is already on disk.
//
// Bootstrap failures are not recovered: a broken toolchain bootstrap must
// be visible to the caller.
func Ensure(ctx context.Context, opts EnsureOptions) (*Rustup, error) {
	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("rustup: failed to resolve project directory: %w", err)
	}

	pinned, err := readPin(projectDir)
	if err != nil {
		return nil, err
	}

	r, err := New(managerName)
	if err == nil {
		r.pinned = pinned
		return r, nil
	}
	if !errors.Is(err, toolchain.ErrNotAvailable) {
		return nil, err
	}

	installDir := filepath.Join(projectDir, installDirName)
	env := toolchain.Env{
		"RUSTUP_HOME": filepath.Join(installDir, ".rustup"),
		"CARGO_HOME":  filepath.Join(installDir, ".cargo"),
	}

	if _, err := os.Stat(installDir); os.IsNotExist(err) {
		err := Install(ctx, InstallOptions{
			Env:     env,
			Client:  opts.Client,
			BaseURL: opts.BaseURL,
		})
		if err != nil {
			return nil, err
		}
	}

	// The bootstrapped executable is used as-is; a failed installation
	// surfaces on the first subcommand, same as any other broken rustup.
	return &Rustup{
		info: toolchain.ManagerInfo{
			Name: managerName,
			Path: filepath.Join(installDir, ".cargo", "bin", "rustup"+exeSuffix()),
		},
		env:    env,
		pinned: pinned,
	}, nil
}
