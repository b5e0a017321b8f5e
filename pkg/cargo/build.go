package cargo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// BuildOptions customizes a library build.
type BuildOptions struct {
	// OutDir is the directory build artifacts are copied to. It is passed
	// to cargo verbatim; cargo reports the failure if it is unusable.
	OutDir string
	// Features is the ordered list of cargo feature names to enable,
	// duplicates included. It is rendered as a single comma-joined
	// --features argument.
	Features []string
	// Jobs limits the number of parallel cargo jobs. Zero keeps cargo's
	// default.
	Jobs int
}

// Build compiles the library with the given options, blocking until the
// build process exits. Output is streamed to the configured writers while
// the build runs. A non-zero cargo exit is returned as an error; callers
// decide whether it aborts the run.
func (c *Cargo) Build(ctx context.Context, opts BuildOptions) error {
	cmd := execCommandContext(ctx, c.Path, buildArgs(opts)...)
	cmd.Env = c.Env.Merge(os.Environ())

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("cargo: failed to start build: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("cargo: failed to start build: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cargo: failed to start build: %w", err)
	}

	// Both pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error { return drain(stdout, c.stdout()) })
	g.Go(func() error { return drain(stderr, c.stderr()) })

	drainErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("cargo: build failed: %w", err)
	}

	if drainErr != nil {
		return fmt.Errorf("cargo: failed to read build output: %w", drainErr)
	}

	return nil
}

func drain(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
	return scanner.Err()
}

// buildArgs constructs the cargo command line: colored diagnostics, a
// library-only build, and the unstable option required for a custom
// artifact directory.
func buildArgs(opts BuildOptions) []string {
	args := []string{
		"--color", "always",
		"build",
		"--lib",
		"-Zunstable-options",
		"--out-dir=" + opts.OutDir,
		"--features=" + strings.Join(opts.Features, ","),
	}

	if opts.Jobs > 0 {
		args = append(args, "-j", strconv.Itoa(opts.Jobs))
	}

	return args
}
