package toolchain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotAvailable signals that a toolchain manager's executable could not
// be launched on the host: it is absent from the search path, not executable,
// or failed to start for another OS-level reason. Callers may react to it by
// bootstrapping a private installation. Faults that are not launch failures
// (for example a manager that runs but exits with an error) are reported as
// distinct errors and should not trigger a bootstrap.
var ErrNotAvailable = errors.New("toolchain: manager not available")

// A Manager installs and selects versions of a compiler toolchain and can
// report where the tools of the active toolchain live.
type Manager interface {
	// Which returns the absolute path of the named tool in the currently
	// active toolchain. The result is not validated: a stale or missing
	// path surfaces only when the tool is invoked.
	Which(ctx context.Context, tool string) (string, error)
	// Info returns some information about the manager.
	Info() ManagerInfo
}

// ManagerInfo holds some information about the underlying toolchain manager.
type ManagerInfo struct {
	// Name of the manager.
	Name string
	// Path of the manager's executable.
	Path string
	// Version number of the manager. May be empty for a freshly
	// bootstrapped installation that was never probed.
	Version string
}

// ManagerConstructor is a function that constructs a Manager from an executable.
// It takes either a path to the executable or the executable's name as an argument.
type ManagerConstructor func(pathOrExecutableName string) (Manager, error)

var (
	managers      = map[string]ManagerConstructor{}
	managersNames []string // provide ordered iteration for the map
	managersMutex sync.RWMutex
)

// NewManager looks up the manager's executable with the given name on the host
// and initializes a Manager instance that uses that executable.
func NewManager(name string) (Manager, error) {
	managersMutex.RLock()
	constructor := managers[name]
	managersMutex.RUnlock()

	if constructor == nil {
		return nil, fmt.Errorf("toolchain: missing manager %q, forgotten import?", name)
	}

	manager, err := constructor(name)
	if err != nil {
		return nil, fmt.Errorf("toolchain: failed to initialize manager %q: %w", name, err)
	}

	return manager, nil
}

// DetectManagers returns all the supported (imported) toolchain managers
// available on the host system.
func DetectManagers() []Manager {
	managersMutex.RLock()
	defer managersMutex.RUnlock()

	var found []Manager

	for _, name := range managersNames {
		manager, err := managers[name](name)
		if err != nil {
			continue
		}

		found = append(found, manager)
	}

	return found
}

// RegisterManager adds a custom Manager implementation for usage.
// If an implementation with the same name already exists or the provided
// constructor is nil, this function panics. If the name has path separators
// or path list separators, this function panics.
//
// The provided name may be used by the constructor to look up the path of the manager's executable.
func RegisterManager(name string, constructor ManagerConstructor) {
	managersMutex.Lock()
	defer managersMutex.Unlock()

	if !isValidImplementationName(name) {
		panic(fmt.Sprintf("toolchain: manager name %q has invalid characters", name))
	}

	if managers[name] != nil {
		panic(fmt.Sprintf("toolchain: manager %q is already registered", name))
	}

	if constructor == nil {
		panic(fmt.Sprintf("toolchain: constructor provided for manager %q is nil", name))
	}

	managers[name] = constructor
	managersNames = append(managersNames, name)
}
