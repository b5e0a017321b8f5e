/*
Package toolchain provides a set of utilities to locate and use
toolchain managers such as rustup. It abstracts their usage under
convenient interfaces so the build orchestration code does not
depend on one particular manager.
*/
package toolchain

import (
	"os"
	"strings"
)

func isValidImplementationName(name string) bool {
	return !strings.ContainsAny(name, string([]rune{os.PathSeparator, os.PathListSeparator}))
}
