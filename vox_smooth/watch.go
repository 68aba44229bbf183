package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	var flags exportFlags
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch <document> <output>",
		Short: "Export, then export again whenever the inputs change",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			rebuild := func() {
				session, err := flags.load(args[0])
				if err == nil {
					err = export(session, args[1], flags.format)
				}
				if err != nil {
					log.Println("Export failed:", err)
				}
			}
			paths := []string{args[0]}
			if flags.overlayPath != "" {
				paths = append(paths, flags.overlayPath)
			}
			rebuild()
			return watchFiles(ctx, paths, debounce, rebuild)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.format, "format", "stl", "output format (stl or obj)")
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "time to wait for more changes")
	return cmd
}

// watchFiles calls onChange after any of paths has been
// modified and no further changes arrived within the
// debounce window. It blocks until ctx is done.
//
// Parent directories are watched instead of the files
// themselves, since many editors save by replacing files.
func watchFiles(ctx context.Context, paths []string, debounce time.Duration,
	onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watch files")
	}
	defer watcher.Close()

	watched := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrap(err, "watch files")
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
	}
	log.Println("Watching", len(paths), "file(s) for changes ...")

	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] || !isModification(event.Op) {
				continue
			}
			timerC = time.After(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("Watch error:", err)
		case <-timerC:
			timerC = nil
			log.Println("Inputs changed, rebuilding ...")
			onChange()
		}
	}
}

func isModification(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
