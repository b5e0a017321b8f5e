package toolchain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/project-a/buildtool/pkg/toolchain"
)

type fakeManager struct {
	info toolchain.ManagerInfo
}

var _ toolchain.Manager = (*fakeManager)(nil)

func (f *fakeManager) Which(context.Context, string) (string, error) {
	return "/fake/cargo", nil
}

func (f *fakeManager) Info() toolchain.ManagerInfo {
	return f.info
}

var errUnavailableHost = errors.New("unavailable on this host")

func init() {
	toolchain.RegisterManager("fake", func(pathOrExecutableName string) (toolchain.Manager, error) {
		return &fakeManager{info: toolchain.ManagerInfo{Name: "fake", Path: pathOrExecutableName}}, nil
	})
	toolchain.RegisterManager("broken", func(string) (toolchain.Manager, error) {
		return nil, errUnavailableHost
	})
}

func TestNewManager(t *testing.T) {
	manager, err := toolchain.NewManager("fake")
	require.NoError(t, err)
	require.Equal(t, "fake", manager.Info().Name)
	require.Equal(t, "fake", manager.Info().Path, "Constructor must receive the registered name")

	_, err = toolchain.NewManager("unregistered")
	require.Error(t, err)

	_, err = toolchain.NewManager("broken")
	require.ErrorIs(t, err, errUnavailableHost)
}

func TestDetectManagers(t *testing.T) {
	names := make(map[string]bool)
	for _, manager := range toolchain.DetectManagers() {
		names[manager.Info().Name] = true
	}

	require.True(t, names["fake"], "Constructible managers must be detected")
	require.False(t, names["broken"], "Managers failing initialization must be skipped")
}

func TestRegisterManager_Panics(t *testing.T) {
	require.Panics(t, func() {
		toolchain.RegisterManager("fake", func(string) (toolchain.Manager, error) { return nil, nil })
	}, "Duplicate registration must panic")

	require.Panics(t, func() {
		toolchain.RegisterManager("nil-constructor", nil)
	}, "Nil constructor must panic")

	require.Panics(t, func() {
		toolchain.RegisterManager("bad/name", func(string) (toolchain.Manager, error) { return nil, nil })
	}, "Names with path separators must panic")
}
