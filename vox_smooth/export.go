package main

import (
	"log"

	"github.com/jon-heard/MagicaVoxelSmoother/smoother"
	"github.com/jon-heard/MagicaVoxelSmoother/smoothmesh"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type exportFlags struct {
	sessionFlags
	format string
}

func newExportCommand() *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "export <document> <output>",
		Short: "Export the smoothed models as a mesh",
		Long: "Export writes <output>.stl, or <output>.obj, <output>.mtl and " +
			"<output>.png with --format obj.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := flags.load(args[0])
			if err != nil {
				return err
			}
			return export(session, args[1], flags.format)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.format, "format", "stl", "output format (stl or obj)")
	return cmd
}

// export writes every model of a session into one mesh.
func export(session *smoother.Session, outBase, format string) error {
	faces, err := buildFaces(session)
	if err != nil {
		return err
	}
	switch format {
	case "stl":
		log.Println("Saving", outBase+".stl", "...")
		return smoothmesh.SaveSTL(outBase+".stl", faces)
	case "obj":
		log.Println("Saving", outBase+".obj", "...")
		return smoothmesh.SaveOBJ(outBase, faces, session.Palette)
	}
	return errors.Errorf("unknown format %q", format)
}

// buildFaces builds the models in parallel and joins
// their faces in model order.
func buildFaces(session *smoother.Session) ([]smoothmesh.Face, error) {
	modelFaces := make([][]smoothmesh.Face, len(session.Models))
	var g errgroup.Group
	for i, m := range session.Models {
		g.Go(func() error {
			faces, err := smoothmesh.Build(m)
			if err != nil {
				return errors.Wrapf(err, "model %d", i)
			}
			modelFaces[i] = faces
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var res []smoothmesh.Face
	for _, faces := range modelFaces {
		res = append(res, faces...)
	}
	return res, nil
}
