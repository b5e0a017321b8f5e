/*
Package modules defines the optional feature areas of the project-a
library. Each module maps to a cargo feature flag enabled at build time
and to a preprocessor definition in the generated header.
*/
package modules

import (
	"fmt"
	"strings"
)

// A Module is a named optional feature area of the compiled library.
type Module int

const (
	Event Module = iota
	Render

	moduleEventString  = "event"
	moduleRenderString = "render"

	// featurePrefix maps a module name to its cargo feature name.
	featurePrefix = "c-"
	// definePrefix maps a module name to its preprocessor definition.
	definePrefix = "MODULE_"
)

func (m Module) String() string {
	switch m {
	case Event:
		return moduleEventString
	case Render:
		return moduleRenderString
	default:
		return fmt.Sprintf("modules.Module(%d)", int(m))
	}
}

// Feature returns the cargo feature name the module is built under.
func (m Module) Feature() string {
	return featurePrefix + m.String()
}

// Define returns the preprocessor definition recorded in the generated
// header when the module is enabled.
func (m Module) Define() string {
	return definePrefix + strings.ToUpper(m.String())
}

// ParseModule converts a module identifier from command-line input.
// Only the documented identifiers are accepted.
func ParseModule(input string) (Module, error) {
	switch input {
	case moduleEventString:
		return Event, nil
	case moduleRenderString:
		return Render, nil
	default:
		return 0, fmt.Errorf("unknown module %q (valid modules: %s, %s)", input, moduleEventString, moduleRenderString)
	}
}
