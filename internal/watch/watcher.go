// Package watch regenerates the output page whenever the input file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the input file and reruns generation after changes settle.
type Watcher struct {
	inputPath string
	generate  func() error
	watcher   *fsnotify.Watcher
	stopChan  chan struct{}
	runChan   chan struct{}
	debounce  time.Duration
}

// New creates a watcher for inputPath that calls generate after each change.
func New(inputPath string, generate func() error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Resolve absolute path for consistent watching
	absPath, err := filepath.Abs(inputPath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve input path: %w", err)
	}

	return &Watcher{
		inputPath: absPath,
		generate:  generate,
		watcher:   watcher,
		stopChan:  make(chan struct{}),
		runChan:   make(chan struct{}, 1),
		debounce:  500 * time.Millisecond,
	}, nil
}

// Start begins monitoring the input file.
func (w *Watcher) Start(ctx context.Context) error {
	// Watch the directory containing the input file (more reliable than
	// watching the file directly, and survives editors that replace-on-save).
	inputDir := filepath.Dir(w.inputPath)
	if err := w.watcher.Add(inputDir); err != nil {
		return fmt.Errorf("failed to watch input directory %s: %w", inputDir, err)
	}

	slog.Info("Watching input file", "path", w.inputPath)

	go w.watchLoop(ctx)
	go w.runLoop(ctx)

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.stopChan)
	if err := w.watcher.Close(); err != nil {
		slog.Error("Error closing file watcher", "error", err)
	}
}

// watchLoop filters file system events down to the watched input file.
func (w *Watcher) watchLoop(ctx context.Context) {
	inputFile := filepath.Base(w.inputPath)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != inputFile {
				continue
			}

			switch {
			case event.Op&fsnotify.Write == fsnotify.Write:
				slog.Debug("Input file write detected", "file", event.Name)
				w.trigger()
			case event.Op&fsnotify.Create == fsnotify.Create:
				slog.Debug("Input file create detected", "file", event.Name)
				w.trigger()
			case event.Op&fsnotify.Remove == fsnotify.Remove:
				slog.Warn("Input file removed", "file", event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", "error", err)
		}
	}
}

// runLoop debounces triggers and runs generation. Generation failures are
// logged and the watcher keeps running; the next change retries.
func (w *Watcher) runLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.runChan:
			timer := time.NewTimer(w.debounce)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-w.stopChan:
				timer.Stop()
				return
			case <-timer.C:
			}

			if err := w.generate(); err != nil {
				slog.Error("Generation failed", "error", err)
			}
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.runChan <- struct{}{}:
	default: // a run is already pending
	}
}
