package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/pkg/core"
)

func TestFormatFlags_Apply(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	ff := newFormatFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--align", "center", "--font", "mono"}))

	got := map[core.Axis]string{}
	require.NoError(t, ff.apply(func(axis core.Axis, value string) error {
		got[axis] = value
		return nil
	}))
	assert.Equal(t, map[core.Axis]string{
		core.AxisFontFamily: "mono",
		core.AxisTextAlign:  "center",
	}, got)
}

func TestFormatFlags_ApplyNamesTheFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	ff := newFormatFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--size", "huge"}))

	f := core.DefaultFormatting()
	err := ff.apply(func(axis core.Axis, value string) error {
		_, err := f.With(axis, value)
		return err
	})
	assert.ErrorIs(t, err, core.ErrInvalidFormatting)
	assert.ErrorContains(t, err, "--size")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "Buy milk", preview("Buy milk"))
	assert.Equal(t, "first …", preview("first\nsecond"))

	long := preview(strings.Repeat("é", 100))
	assert.Len(t, []rune(long), previewLength)
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"add", "list", "show", "edit", "delete", "render", "keys", "mcp", "config", "version"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
