package rustup

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/docker/go-units"

	"github.com/project-a/buildtool/pkg/toolchain"
)

// distBaseURL is the fixed location the rustup installers are published at.
// The full installer URL embeds the host's target triplet.
const distBaseURL = "https://static.rust-lang.org/rustup/dist"

// InstallOptions configures a bootstrap installation.
type InstallOptions struct {
	// Env holds the RUSTUP_HOME/CARGO_HOME overrides pointing inside the
	// private install directory. They are passed to the installer so it
	// writes nothing outside of it.
	Env toolchain.Env
	// Client is the HTTP client used for the installer download.
	// Defaults to http.DefaultClient.
	Client *http.Client
	// BaseURL overrides the rustup dist server location.
	BaseURL string
}

// Install downloads the platform-specific rustup installer into a fresh
// temporary directory and runs it non-interactively with a minimal
// profile, no default toolchain and without modifying the user's search
// path. A download failure or a non-zero installer exit propagates to the
// caller; a broken bootstrap is not recoverable here.
func Install(ctx context.Context, opts InstallOptions) error {
	triplet, err := hostTriplet()
	if err != nil {
		return err
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = distBaseURL
	}

	tmp, err := os.MkdirTemp("", "rustup-init")
	if err != nil {
		return fmt.Errorf("rustup: failed to create download directory: %w", err)
	}

	installer := filepath.Join(tmp, "rustup-init"+exeSuffix())
	url := baseURL + "/" + triplet + "/rustup-init" + exeSuffix()

	if err := download(ctx, opts.Client, url, installer); err != nil {
		return err
	}

	cmd := execCommandContext(ctx, installer,
		"-y", "--no-modify-path", "--profile", "minimal", "--default-toolchain", "none")
	cmd.Env = opts.Env.Merge(os.Environ())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rustup: installer failed: %w", err)
	}

	return nil
}

func download(ctx context.Context, client *http.Client, url, dest string) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("rustup: failed to request installer: %w", err)
	}

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("rustup: installer download failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("rustup: installer download failed: %s", http.StatusText(res.StatusCode))
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return fmt.Errorf("rustup: failed to create installer file: %w", err)
	}

	n, err := io.Copy(f, res.Body)
	if err != nil {
		f.Close()
		return fmt.Errorf("rustup: installer download failed: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("rustup: failed to write installer file: %w", err)
	}

	log.Printf("downloaded %s (%s)", url, units.HumanSize(float64(n)))

	return nil
}

// hostTriplet maps the host platform to the target triplet embedded in
// the installer's URL.
func hostTriplet() (string, error) {
	return triplet(hostOS, hostArch)
}

func triplet(goos, goarch string) (string, error) {
	switch goos + "/" + goarch {
	case "linux/amd64":
		return "x86_64-unknown-linux-gnu", nil
	case "linux/arm64":
		return "aarch64-unknown-linux-gnu", nil
	case "darwin/amd64":
		return "x86_64-apple-darwin", nil
	case "darwin/arm64":
		return "aarch64-apple-darwin", nil
	case "windows/amd64":
		return "x86_64-pc-windows-msvc", nil
	default:
		return "", fmt.Errorf("rustup: no installer is published for %s/%s", goos, goarch)
	}
}
