package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/verdant/internal/config"
	"github.com/fyrsmithlabs/verdant/internal/logging"
)

// debounceWindow batches editor save storms into one recompression.
const debounceWindow = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompress automatically when input files change",
	Long: `Watch the input directory and rerun compression whenever a markdown
file is created, modified, renamed or removed. Changes are debounced so
an editor writing several files triggers a single run.

Examples:
  verdant watch --input ./docs
  verdant watch -i ./docs --format vrd --chunk`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer logging.Sync(logger) //nolint:errcheck

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("initializing filesystem watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, cfg.Input); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Compress once up front so the output exists before the first change.
	if _, _, err := compressOnce(cmd, cfg, logger); err != nil {
		logger.Error("initial compression failed", zap.Error(err))
	}

	logger.Info("watching for changes", zap.String("input", cfg.Input))
	return watchLoop(ctx, cmd, cfg, logger, watcher)
}

func watchLoop(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, watcher *fsnotify.Watcher) error {
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping watch")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			// New directories join the watch so nested files are seen.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						logger.Warn("failed to watch new directory",
							zap.String("path", event.Name), zap.Error(err))
					}
					continue
				}
			}
			logger.Debug("change detected",
				zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if debounce == nil {
				debounce = time.NewTimer(debounceWindow)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(debounceWindow)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			if _, _, err := compressOnce(cmd, cfg, logger); err != nil {
				logger.Error("recompression failed", zap.Error(err))
				continue
			}
			logger.Info("recompressed after change")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

// relevantEvent filters to markdown file changes and directory creation.
// Creating an unrelated file (editor temp files, build artifacts) must
// not trigger a recompression.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Create) {
		if filepath.Ext(event.Name) == ".md" {
			return true
		}
		info, err := os.Stat(event.Name)
		return err == nil && info.IsDir()
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Ext(event.Name) == ".md"
}

// watchTree registers root and every subdirectory with the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}
		}
		return nil
	})
}
