// Command vox_smooth smooths voxel models by filling
// blank cells next to voxel edges and corners with bevel
// geometry, and exports the result as a mesh.
//
// Models are read from YAML or JSON documents containing
// a palette and a list of models. Per-cell edits are kept
// in a separate overlay file.
package main

import (
	"context"
	"log"
	"strconv"

	"github.com/jon-heard/MagicaVoxelSmoother/smoother"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/unixpickle/essentials"
)

type sessionFlags struct {
	overlayPath  string
	modelIndex   int
	buggySmooths bool
}

func (s *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.overlayPath, "overlay", "", "overlay file with per-cell edits")
	cmd.Flags().IntVar(&s.modelIndex, "model-index", 0, "index of the model the overlay applies to")
	cmd.Flags().BoolVar(&s.buggySmooths, "buggy-smooths", false, "enable the legacy side-corner patterns")
}

// load reads a document, applies the overlay to the
// selected model, and returns the session.
func (s *sessionFlags) load(docPath string) (*smoother.Session, error) {
	log.Println("Loading", docPath, "...")
	doc, err := smoother.LoadDocumentFile(docPath)
	if err != nil {
		return nil, err
	}
	session, err := smoother.NewSession(doc)
	if err != nil {
		return nil, err
	}
	if s.overlayPath != "" {
		overlay, err := smoother.LoadOverlayFile(s.overlayPath)
		if err != nil {
			return nil, err
		}
		overlay.UseBuggySmooths = overlay.UseBuggySmooths || s.buggySmooths
		if err := session.SetOverlay(s.modelIndex, overlay); err != nil {
			return nil, err
		}
	} else if s.buggySmooths {
		session.SetUseBuggySmooths(true)
	}
	return session, nil
}

func parseCoord(args []string) (smoother.Coord, error) {
	var c smoother.Coord
	if len(args) != 3 {
		return c, errors.Errorf("expected 3 coordinates but got %d", len(args))
	}
	for i, arg := range args {
		x, err := strconv.Atoi(arg)
		if err != nil {
			return c, errors.Wrapf(err, "parse coordinate %q", arg)
		}
		c[i] = x
	}
	return c, nil
}

func main() {
	essentials.Must(newRootCommand().ExecuteContext(context.Background()))
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "vox_smooth",
		Short:        "Smooth voxel models with bevel geometry",
		SilenceUsage: true,
	}
	root.AddCommand(
		newExportCommand(),
		newInfoCommand(),
		newInspectCommand(),
		newToggleCommand(),
		newWatchCommand(),
	)
	return root
}
