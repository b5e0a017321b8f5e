/*
Package cargo invokes the cargo build tool resolved through the
toolchain manager to compile the project-a library.
*/
package cargo

import (
	"io"
	"os"
	"os/exec"

	"github.com/project-a/buildtool/pkg/toolchain"
)

var execCommandContext = exec.CommandContext

// Cargo runs a cargo executable. The zero value is not usable; Path must
// be set to the executable resolved via the toolchain manager.
type Cargo struct {
	// Path of the cargo executable.
	Path string
	// Env holds environment overrides merged over the inherited
	// environment for every invocation. Usually the toolchain homes of a
	// bootstrapped installation.
	Env toolchain.Env
	// Stdout and Stderr receive the subprocess output line by line.
	// They default to the process's own standard streams.
	Stdout io.Writer
	Stderr io.Writer
}

func (c *Cargo) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Cargo) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}
