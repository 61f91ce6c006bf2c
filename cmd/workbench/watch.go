// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/blinklabs-io/workbench/pipeline"
	"github.com/blinklabs-io/workbench/workbench"
)

type watchFlags struct {
	flagset *flag.FlagSet
	file    string
	workers int
}

func newWatchFlags() *watchFlags {
	f := &watchFlags{
		flagset: flag.NewFlagSet("watch", flag.ExitOnError),
	}
	f.flagset.StringVar(&f.file, "file", "", "file containing hex transaction text")
	f.flagset.IntVar(&f.workers, "workers", 0, "number of decode workers (0 for the default)")
	return f
}

func runWatch(f *globalFlags) {
	watchFlags := newWatchFlags()
	err := watchFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if watchFlags.file == "" {
		fmt.Printf("ERROR: you must specify -file\n")
		os.Exit(1)
	}
	if err := watchFile(watchFlags); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}

func watchFile(f *watchFlags) error {
	filePath, err := filepath.Abs(filepath.Clean(f.file))
	if err != nil {
		return err
	}
	if _, err := os.Stat(filePath); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []pipeline.PipelineOption{pipeline.WithLogger(slog.Default())}
	if f.workers > 0 {
		opts = append(opts, pipeline.WithDecodeWorkers(f.workers))
	}
	inspector, err := workbench.NewInspector(ctx, opts...)
	if err != nil {
		return err
	}
	defer inspector.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Editors often replace the file on save, so watch the directory
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		return err
	}

	if err := inspectFile(ctx, inspector, filePath); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "component", "watch", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != filePath {
				continue
			}
			slog.Debug("file event", "component", "watch", "event", event.String())
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				slog.Info("file removed, waiting for it to return", "component", "watch", "file", filePath)
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := inspectFile(ctx, inspector, filePath); err != nil {
				return err
			}
		}
	}
}

// inspectFile submits the file contents and prints the view once the decode is applied
func inspectFile(ctx context.Context, inspector *workbench.Inspector, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		slog.Warn("failed to read file", "component", "watch", "file", filePath, "error", err)
		return nil
	}
	if err := inspector.Update(workbench.TextChanged{Text: string(data)}); err != nil {
		return err
	}
	if err := inspector.Wait(ctx); err != nil {
		return err
	}
	fmt.Print(inspector.View().String())
	fmt.Println()
	return nil
}
