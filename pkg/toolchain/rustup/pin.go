package rustup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// pinFileName is the standard rustup toolchain pin file.
const pinFileName = "rust-toolchain.toml"

type pinFile struct {
	Toolchain struct {
		Channel string `toml:"channel"`
	} `toml:"toolchain"`
}

// readPin returns the toolchain channel pinned by the project's
// rust-toolchain.toml, or the empty string when the project pins nothing.
// A pin file that exists but cannot be parsed is an error.
func readPin(projectDir string) (string, error) {
	path := filepath.Join(projectDir, pinFileName)

	var pin pinFile
	if _, err := toml.DecodeFile(path, &pin); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("rustup: failed to parse %s: %w", pinFileName, err)
	}

	return pin.Toolchain.Channel, nil
}
