package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/core"
)

// formatFlags binds one flag per formatting axis.
type formatFlags struct {
	values map[core.Axis]*string
}

var axisFlags = []struct {
	axis core.Axis
	name string
}{
	{core.AxisFontFamily, "font"},
	{core.AxisFontSize, "size"},
	{core.AxisTextCase, "case"},
	{core.AxisTextAlign, "align"},
}

func newFormatFlags(cmd *cobra.Command) *formatFlags {
	ff := &formatFlags{values: make(map[core.Axis]*string)}
	for _, f := range axisFlags {
		ff.values[f.axis] = cmd.Flags().String(f.name, "",
			fmt.Sprintf("%s (%s)", f.axis, strings.Join(core.AxisValues(f.axis), "|")))
	}
	return ff
}

// apply calls set for every axis whose flag was given, in a fixed order.
func (ff *formatFlags) apply(set func(axis core.Axis, value string) error) error {
	for _, f := range axisFlags {
		v := *ff.values[f.axis]
		if v == "" {
			continue
		}
		if err := set(f.axis, v); err != nil {
			return fmt.Errorf("--%s: %w", f.name, err)
		}
	}
	return nil
}
