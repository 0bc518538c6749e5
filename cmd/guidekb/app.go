package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c360studio/guidekb/config"
	"github.com/c360studio/guidekb/corpus"
	"github.com/c360studio/guidekb/source"
	"github.com/c360studio/guidekb/source/parser"
	"github.com/c360studio/guidekb/store"
	"github.com/c360studio/guidekb/watch"
)

// App wires corpus discovery, parsing, and the store together.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	parsers  *parser.Registry
	registry *prometheus.Registry
	metrics  *store.Metrics

	// current holds the active store; watch mode swaps it on reload
	current atomic.Pointer[store.Store]
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config) *App {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	registry := prometheus.NewRegistry()
	return &App{
		cfg:      cfg,
		logger:   logger,
		parsers:  parser.NewRegistry(),
		registry: registry,
		metrics:  store.NewMetrics(registry),
	}
}

// BuildStore loads the configured corpus into a fresh store.
// With no configured source paths the embedded default corpus is used.
func (a *App) BuildStore() (*store.Store, error) {
	docs, err := a.loadDocuments()
	if err != nil {
		return nil, err
	}

	s, err := store.Load(docs,
		store.WithLogger(a.logger),
		store.WithMetrics(a.metrics),
	)
	if err != nil {
		return nil, err
	}

	a.current.Store(s)
	return s, nil
}

// Current returns the most recently loaded store, or nil before the first
// successful BuildStore. Watch mode swaps it on every reload, so long-lived
// readers re-fetch it rather than holding a store across reloads.
func (a *App) Current() *store.Store {
	return a.current.Load()
}

// loadDocuments discovers and parses all corpus sources.
func (a *App) loadDocuments() ([]*source.Document, error) {
	if len(a.cfg.Sources.Paths) == 0 {
		doc, err := a.parsers.Parse(corpus.Filename, corpus.Default())
		if err != nil {
			return nil, fmt.Errorf("parse embedded corpus: %w", err)
		}
		return []*source.Document{doc}, nil
	}

	files, err := source.Discover(a.cfg.Sources.Paths, a.cfg.Sources.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no corpus files match %v", a.cfg.Sources.Paths)
	}

	docs := make([]*source.Document, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		doc, err := a.parsers.Parse(file, content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Watch rebuilds the store whenever a corpus source file changes, until the
// context is cancelled or an interrupt arrives. A reload that fails keeps
// the previous store.
func (a *App) Watch(ctx context.Context, out io.Writer) error {
	if len(a.cfg.Sources.Paths) == 0 {
		return fmt.Errorf("watch requires configured source paths; the embedded corpus never changes")
	}

	s, err := a.BuildStore()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d entries, watching for changes\n", s.Len())

	files, err := source.Discover(a.cfg.Sources.Paths, a.cfg.Sources.Extensions)
	if err != nil {
		return err
	}

	watchCfg := watch.DefaultConfig()
	if a.cfg.Watch.DebounceDelay > 0 {
		watchCfg.DebounceDelay = a.cfg.Watch.DebounceDelay
	}
	watchCfg.Extensions = a.cfg.Sources.Extensions

	watcher, err := watch.New(watchCfg, files, a.logger)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watcher.Start(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}

			rebuilt, err := a.BuildStore()
			if err != nil {
				a.logger.Error("Reload failed, keeping previous store",
					slog.String("event_id", event.EventID),
					slog.String("path", event.Path),
					slog.String("error", err.Error()))
				continue
			}
			fmt.Fprintf(out, "Reloaded %d entries (%s %s)\n",
				rebuilt.Len(), event.Operation, event.Path)
		}
	}
}

// renderEntries prints entries in document order.
func renderEntries(cmd *cobra.Command, entries []store.Entry) {
	out := cmd.OutOrStdout()
	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "[%s] %s (%s)\n", entry.ID, entry.Title, entry.Category)
		for _, line := range entry.Body {
			fmt.Fprintf(out, "  %s\n", line)
		}
		for _, example := range entry.Examples {
			switch example.Kind {
			case store.ExampleQuestionResponse:
				fmt.Fprintf(out, "  Q: %s\n  A: %s\n", example.Prompt, example.Response)
			case store.ExampleBeforeAfter:
				fmt.Fprintf(out, "  Before:\n%s\n  After:\n%s\n",
					indent(example.Prompt), indent(example.Response))
			}
		}
	}
}

// indent prefixes every line with four spaces.
func indent(s string) string {
	var out []byte
	for _, line := range splitLines(s) {
		out = append(out, []byte("    "+line+"\n")...)
	}
	if len(out) > 0 {
		out = out[:len(out)-1]
	}
	return string(out)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
