package main

import (
	"log"

	"github.com/jon-heard/MagicaVoxelSmoother/smoother"
	"github.com/spf13/cobra"
)

func newToggleCommand() *cobra.Command {
	var flags sessionFlags
	var bit string
	cmd := &cobra.Command{
		Use:   "toggle <document> <overlay> <x> <y> <z>",
		Short: "Toggle a configuration bit in an overlay file",
		Long: "Toggle flips a bit at one cell, re-applies the overlay, saves it " +
			"back to the overlay file, and prints the new cell contents.",
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := smoother.ParseCellConfig(bit)
			if err != nil {
				return err
			}
			c, err := parseCoord(args[2:])
			if err != nil {
				return err
			}
			flags.overlayPath = args[1]
			session, err := flags.load(args[0])
			if err != nil {
				return err
			}
			if err := session.Toggle(flags.modelIndex, c, b); err != nil {
				return err
			}
			log.Println("Saving", flags.overlayPath, "...")
			if err := smoother.SaveOverlayFile(flags.overlayPath, session.Overlay(flags.modelIndex)); err != nil {
				return err
			}
			printCell(cmd.OutOrStdout(), session, flags.modelIndex, c)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().MarkHidden("overlay")
	cmd.Flags().StringVar(&bit, "bit", "no-voxel", "bit to toggle (no-voxel, no-smooth or blank)")
	return cmd
}
