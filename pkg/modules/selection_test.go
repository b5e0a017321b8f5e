package modules_test

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/project-a/buildtool/pkg/modules"
)

func TestSelection_Set(t *testing.T) {
	var sel modules.Selection

	require.NoError(t, sel.Set("render"))
	require.NoError(t, sel.Set("event"))
	require.NoError(t, sel.Set("render"), "Duplicates must be tolerated")
	require.Error(t, sel.Set("audio"))

	// A failed Set must not modify the selection.
	require.Equal(t, modules.Selection{modules.Render, modules.Event, modules.Render}, sel)
	require.Equal(t, []string{"c-render", "c-event", "c-render"}, sel.Features())
	require.Equal(t, "render,event,render", sel.String())
}

func TestSelection_FlagParsing(t *testing.T) {
	type test struct {
		name      string
		args      []string
		expect    modules.Selection
		expectErr bool
	}

	tests := []test{
		{
			name:   "None",
			args:   nil,
			expect: nil,
		},
		{
			name:   "Single",
			args:   []string{"--module", "event"},
			expect: modules.Selection{modules.Event},
		},
		{
			name:   "OrderPreserved",
			args:   []string{"--module", "render", "--module", "event"},
			expect: modules.Selection{modules.Render, modules.Event},
		},
		{
			name:      "Invalid",
			args:      []string{"--module", "everything"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagSet := flag.NewFlagSet("buildtool", flag.ContinueOnError)
			flagSet.SetOutput(io.Discard)

			var sel modules.Selection
			flagSet.Var(&sel, "module", "")

			err := flagSet.Parse(tt.args)
			if tt.expectErr {
				require.Error(t, err, "Expected the flag parser to reject the input")
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expect, sel)
		})
	}
}
