package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"scentid/internal/analysis"
	"scentid/internal/logging"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var imageFlag string
	var watchDir string

	cmd := &cobra.Command{
		Use:   "analyze [response-file]",
		Short: "Parse annotation responses into structured analysis records",
		Long: "Parses a MAIN:/SECONDARY: annotation response into a structured record " +
			"under the analysis directory. With --watch, a drop directory is monitored " +
			"and every new <image-name>.txt file is processed as it appears.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchDir != "" {
				if len(args) != 0 {
					return errors.New("--watch does not take a response file argument")
				}
				return watchResponses(ctx, cmd, watchDir)
			}
			if len(args) != 1 {
				return errors.New("provide one response file, or use --watch")
			}
			return processResponse(ctx, cmd, args[0], imageFlag)
		},
	}

	cmd.Flags().StringVar(&imageFlag, "image", "", "Image filename the response describes (default: derived from the response filename)")
	cmd.Flags().StringVar(&watchDir, "watch", "", "Watch a directory and process new response files")
	return cmd
}

func processResponse(ctx *commandContext, cmd *cobra.Command, path, imageName string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	if imageName == "" {
		imageName = imageNameFor(path)
		if imageName == "" {
			return fmt.Errorf("cannot derive an image name from %s; pass --image", filepath.Base(path))
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	result := analysis.Parse(imageName, string(data))
	encoded, err := analysis.EncodeRecord(result)
	if err != nil {
		return err
	}

	target := filepath.Join(cfg.Paths.AnalysisDir, recordName(imageName))
	if err := os.WriteFile(target, encoded, 0o644); err != nil {
		return fmt.Errorf("write analysis record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d mention(s) -> %s\n", imageName, len(result.Mentions), target)
	return nil
}

// watchResponses blocks on a filesystem watcher, processing every response
// file dropped into dir until the command context is cancelled.
func watchResponses(ctx *commandContext, cmd *cobra.Command, dir string) error {
	logger := ctx.ensureLogger().With(logging.String("component", "analyze-watch"))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for response files (ctrl-c to stop)\n", dir)

	for {
		select {
		case <-cmd.Context().Done():
			return context.Cause(cmd.Context())
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".txt") {
				continue
			}
			if err := processResponse(ctx, cmd, event.Name, ""); err != nil {
				logger.Warn("response not processed",
					logging.String("path", event.Name), logging.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.Error(err))
		}
	}
}

// imageNameFor derives the image filename from a response file named
// "<image-name>.txt" (for example "7-main.png.txt").
func imageNameFor(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, ".txt")
	if name == base {
		return ""
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".avif":
		return name
	}
	return ""
}

// recordName maps an image filename to its analysis record filename.
func recordName(imageName string) string {
	return strings.TrimSuffix(imageName, filepath.Ext(imageName)) + ".json"
}
