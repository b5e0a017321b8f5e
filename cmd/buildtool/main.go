// Command buildtool compiles the project-a library with a selected set
// of modules. It ensures a rustup installation is available —
// bootstrapping a project-local one when needed — resolves cargo through
// it, runs the library build and records the enabled modules in
// include/generated.h.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/project-a/buildtool/pkg/cargo"
	"github.com/project-a/buildtool/pkg/modules"
	"github.com/project-a/buildtool/pkg/toolchain/rustup"
)

const (
	defaultConfigPath = "buildtool.toml"
	headerRelPath     = "include/generated.h"
)

func main() {
	log.SetFlags(0)

	var selection modules.Selection
	var outDir, configPath string
	var jobs int
	var noColor bool

	flag.Var(&selection, "module", "Library module to enable; may be repeated (event, render)")
	flag.StringVar(&outDir, "out-dir", "", "The directory build artifacts are placed in")
	flag.IntVar(&jobs, "jobs", 0, "Number of parallel cargo jobs; 0 uses cargo's default")
	flag.StringVar(&configPath, "config", defaultConfigPath, "Path to the project configuration file")
	flag.BoolVar(&noColor, "no-color", false, "Disable colored stage output")
	flag.Parse()

	if noColor {
		color.NoColor = true
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalln("failed to load .env:", err)
	}

	cfg, err := loadConfig(configPath, configPath != defaultConfigPath)
	if err != nil {
		log.Fatalln(err)
	}

	if len(selection) == 0 {
		for _, name := range cfg.Build.Modules {
			if err := selection.Set(name); err != nil {
				log.Fatalln("invalid config:", err)
			}
		}
	}
	if outDir == "" {
		outDir = cfg.Build.OutDir
	}
	if jobs == 0 {
		jobs = cfg.Build.Jobs
	}

	projectDir, err := os.Getwd()
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stage := color.New(color.FgCyan, color.Bold)

	stage.Println("==> Locating toolchain manager...")
	manager, err := rustup.Ensure(ctx, rustup.EnsureOptions{ProjectDir: projectDir})
	if err != nil {
		log.Fatalln(err)
	}

	stage.Println("==> Resolving cargo...")
	cargoPath, err := manager.Which(ctx, "cargo")
	if err != nil {
		log.Fatalln(err)
	}

	// The path is used verbatim; an empty or missing out-dir is cargo's
	// failure to report, not ours.
	if outDir != "" {
		if outDir, err = filepath.Abs(outDir); err != nil {
			log.Fatalln(err)
		}
	}

	stage.Println("==> Building library...")
	c := &cargo.Cargo{Path: cargoPath, Env: manager.Env()}
	buildErr := c.Build(ctx, cargo.BuildOptions{
		OutDir:   outDir,
		Features: selection.Features(),
		Jobs:     jobs,
	})

	// The header records what was selected for this build regardless of
	// the build outcome, so downstream consumers always see the latest
	// selection.
	stage.Println("==> Writing generated header...")
	if err := modules.EmitHeader(filepath.Join(projectDir, filepath.FromSlash(headerRelPath)), selection); err != nil {
		log.Fatalln(err)
	}

	if buildErr != nil {
		log.Fatalln(buildErr)
	}
}
