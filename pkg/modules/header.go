package modules

import (
	"fmt"
	"io"
	"os"
)

// WriteHeader writes one preprocessor definition per selected module, in
// selection order, duplicates included.
func WriteHeader(w io.Writer, sel Selection) error {
	for _, m := range sel {
		if _, err := fmt.Fprintf(w, "#define %s\n", m.Define()); err != nil {
			return fmt.Errorf("modules: failed to write header: %w", err)
		}
	}
	return nil
}

// EmitHeader records the selection in the generated header at the given
// path. Prior content is discarded unconditionally; the file is flushed
// before EmitHeader returns.
func EmitHeader(path string, sel Selection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("modules: failed to create header %q: %w", path, err)
	}

	if err := WriteHeader(f, sel); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("modules: failed to flush header %q: %w", path, err)
	}

	return nil
}
