package rustup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/project-a/buildtool/pkg/toolchain"
)

// Rustup drives a rustup executable, either one found on the search path
// or one from a bootstrapped private installation.
type Rustup struct {
	info toolchain.ManagerInfo
	env  toolchain.Env

	// pinned is the toolchain channel from an optional rust-toolchain.toml
	// pin file. When set, tool queries resolve against this channel.
	pinned string
}

var _ toolchain.Manager = (*Rustup)(nil)

// New probes the rustup executable with the given name or path by running
// its version query and initializes a Rustup instance that uses it.
//
// If the probe could not be launched at all, the returned error matches
// toolchain.ErrNotAvailable; callers may then fall back to Bootstrap. A
// probe that launches but exits with an error is reported as a distinct
// failure, since it means a rustup is present but broken.
func New(pathOrExec string) (*Rustup, error) {
	cmd := execCommandContext(context.Background(), pathOrExec, "-V")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("rustup: version probe failed: %w", err)
		}
		return nil, fmt.Errorf("rustup: %w: %v", toolchain.ErrNotAvailable, err)
	}

	info := toolchain.ManagerInfo{
		Name:    managerName,
		Path:    cmd.Path,
		Version: parseVersion(out),
	}

	return &Rustup{info: info}, nil
}

// parseVersion extracts the version number from rustup's version query
// output, which looks like "rustup 1.27.1 (54dd3d00f 2024-04-24)".
func parseVersion(out []byte) string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return line
	}
	return fields[1]
}

// Which returns the absolute path of the named tool in the active
// toolchain, as reported by rustup. The result is only trimmed of
// surrounding whitespace, never validated: a missing tool surfaces when
// it is invoked, not here.
func (r *Rustup) Which(ctx context.Context, tool string) (string, error) {
	args := []string{"which"}
	if r.pinned != "" {
		args = append(args, "--toolchain", r.pinned)
	}
	args = append(args, tool)

	cmd := execCommandContext(ctx, r.info.Path, args...)
	cmd.Env = r.env.Merge(os.Environ())

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("rustup: failed to locate %q: %w", tool, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// Info returns some information about the rustup installation.
func (r *Rustup) Info() toolchain.ManagerInfo {
	return r.info
}

// Env returns the environment overrides that must accompany every child
// process using this installation. It is empty unless the installation
// was bootstrapped into a private directory.
func (r *Rustup) Env() toolchain.Env {
	return r.env
}
