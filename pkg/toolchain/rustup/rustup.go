/*
Package rustup provides a toolchain manager implementation that uses
rustup to install and select Rust toolchains on the host system.

When rustup is not present on the search path, the package can
bootstrap a private, project-local installation that never touches the
user's global toolchain configuration.
*/
package rustup

import (
	"os/exec"
	"runtime"

	"github.com/project-a/buildtool/pkg/toolchain"
)

const managerName = "rustup"

var execCommandContext = exec.CommandContext

var (
	hostOS   = runtime.GOOS
	hostArch = runtime.GOARCH
)

func init() {
	toolchain.RegisterManager(managerName, func(pathOrExecutableName string) (toolchain.Manager, error) {
		return New(pathOrExecutableName)
	})
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
