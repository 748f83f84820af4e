package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/go-reel/reel/pkg/log"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <config.yaml>",
		Short: "Re-render the component tree on every config change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchConfig(cmd, args[0])
		},
	}
}

func watchConfig(cmd *cobra.Command, path string) error {
	logger := log.Default()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the directory and filter
	// events down to the config path.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	render := func() {
		if err := renderConfig(cmd.OutOrStdout(), path); err != nil {
			logger.Warn("render failed", log.Err(err))
		}
	}
	render()
	logger.Info("watching", log.String("path", path))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var last time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			// Saves arrive as event bursts; collapse them.
			if time.Since(last) < 100*time.Millisecond {
				continue
			}
			last = time.Now()
			render()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", log.Err(err))
		case <-stop:
			logger.Info("stopping")
			return nil
		}
	}
}
