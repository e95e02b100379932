package main

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var (
		configPath string
		snapshots  string
		out        string
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run generation whenever the config or a snapshot changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			if err := watcher.Add(filepath.Dir(configPath)); err != nil {
				return err
			}
			// The snapshot dir may not exist until the first inspect.
			if err := watcher.Add(snapshots); err != nil {
				slog.Warn("snapshot directory not watched", "dir", snapshots, "err", err)
			}

			regenerate := func() {
				n, err := runGenerate(cmd, configPath, snapshots, out, lang)
				if err != nil {
					slog.Error("generation failed", "err", err)
					return
				}
				slog.Info("generation complete", "files", n)
			}
			regenerate()

			slog.Info("watching for changes", "config", configPath, "snapshots", snapshots)
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
						continue
					}
					if filepath.Clean(event.Name) != filepath.Clean(configPath) && filepath.Ext(event.Name) != ".snapshot" {
						continue
					}
					slog.Info("change detected", "file", event.Name)
					regenerate()
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					slog.Error("watch error", "err", err)
				}
			}
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "strata.yaml", "feature configuration file")
	cmd.Flags().StringVar(&snapshots, "snapshots", ".strata/snapshots", "snapshot directory")
	cmd.Flags().StringVar(&out, "out", ".", "output root directory")
	cmd.Flags().StringVar(&lang, "lang", "java", "target language (java, kotlin)")
	return cmd
}
