// Command toolchain reports the toolchain managers detected on the host
// and the build tool each of them resolves. It is a diagnostic companion
// to buildtool: when a build picks up the wrong cargo, this shows which
// installation answered.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/project-a/buildtool/pkg/toolchain"
	_ "github.com/project-a/buildtool/pkg/toolchain/rustup"
)

func main() {
	log.SetFlags(0)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	managers := toolchain.DetectManagers()
	if len(managers) == 0 {
		log.Fatalln("no toolchain manager detected on this host")
	}

	for _, manager := range managers {
		info := manager.Info()

		fmt.Printf("Manager: %s\nPath: %s\nVersion: %s\n", info.Name, info.Path, info.Version)

		cargoPath, err := manager.Which(ctx, "cargo")
		if err != nil {
			fmt.Printf("Cargo: not resolved (%v)\n\n", err)
			continue
		}

		fmt.Printf("Cargo: %s\n\n", cargoPath)
	}
}
