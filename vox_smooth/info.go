package main

import (
	"fmt"
	"io"

	"github.com/jon-heard/MagicaVoxelSmoother/smoother"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	var flags sessionFlags
	cmd := &cobra.Command{
		Use:   "info <document>",
		Short: "Print statistics about each model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := flags.load(args[0])
			if err != nil {
				return err
			}
			for i, m := range session.Models {
				printStats(cmd.OutOrStdout(), i, m)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newInspectCommand() *cobra.Command {
	var flags sessionFlags
	cmd := &cobra.Command{
		Use:   "inspect <document> <x> <y> <z>",
		Short: "Print the voxel and smooths in one cell",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCoord(args[1:])
			if err != nil {
				return err
			}
			session, err := flags.load(args[0])
			if err != nil {
				return err
			}
			printCell(cmd.OutOrStdout(), session, flags.modelIndex, c)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func printStats(w io.Writer, idx int, m *smoother.Model) {
	stats := m.Stats()
	fmt.Fprintf(w, "model %d: size %v\n", idx, m.Size)
	fmt.Fprintf(w, "  voxels:  %d (%d enabled, %d culled)\n", stats.Voxels, stats.Enabled, stats.Culled)
	fmt.Fprintf(w, "  smooths: %d (%d disabled)\n", stats.Smooths, stats.Disabled)
	for _, p := range smoother.Patterns {
		fmt.Fprintf(w, "    %-10s %d\n", p.String()+":", stats.ByPattern[p])
	}
}

func printCell(w io.Writer, session *smoother.Session, idx int, c smoother.Coord) {
	m := session.Model(idx)
	fmt.Fprintf(w, "model %d, cell %v: %v\n", idx, c, m.State(c, true))
	voxel, smooths := session.Lookup(idx, c)
	if voxel != nil {
		fmt.Fprintf(w, "  voxel: color=%d enabled=%v culled=%v\n", voxel.Color, voxel.Enabled, voxel.Culled)
	}
	for _, s := range smooths {
		fmt.Fprintf(w, "  smooth: %v color=%d orientation=%d enabled=%v\n",
			s.Pattern, s.Color, s.Orientation, s.Enabled)
	}
	if cfg := session.Overlay(idx).Get(c); cfg != 0 {
		fmt.Fprintf(w, "  config: %v\n", cfg)
	}
}
