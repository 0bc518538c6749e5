// Package main provides the guidekb binary entry point.
// Guidekb is an in-memory index over a categorized engineering-guidelines
// corpus, queryable by category or keyword.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/guidekb/config"
	"github.com/c360studio/guidekb/export"
	"github.com/c360studio/guidekb/vocabulary/guideline"
)

const (
	Version = "0.1.0"
	appName = "guidekb"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var sourceOverrides []string

	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Query a categorized engineering-guidelines corpus",
		Version: Version,
		Long: `guidekb loads a guidance corpus (markdown or HTML) into an immutable
in-memory index and answers lookups by category or keyword. With no
configured sources the embedded default corpus is used.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringSliceVar(&sourceOverrides, "source", nil,
		"corpus file, directory, or glob (repeatable; overrides configured sources)")

	newApp := func() (*App, error) {
		loader := config.NewLoader(slog.Default())
		cfg, err := loader.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if len(sourceOverrides) > 0 {
			cfg.Sources.Paths = sourceOverrides
		}
		return NewApp(cfg), nil
	}

	cmd.AddCommand(
		categoriesCmd(newApp),
		showCmd(newApp),
		searchCmd(newApp),
		validateCmd(newApp),
		exportCmd(newApp),
		watchCmd(newApp),
	)

	return cmd
}

func categoriesCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories present in the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			s, err := app.BuildStore()
			if err != nil {
				return err
			}

			for _, c := range s.Categories() {
				entries, err := s.GetByCategory(c)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %d entries\n", c, len(entries))
			}
			return nil
		},
	}
}

func showCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "show <category>",
		Short: "Print all entries for a category in document order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, ok := guideline.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q (valid: %s)",
					args[0], joinCategories(guideline.All))
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			s, err := app.BuildStore()
			if err != nil {
				return err
			}

			entries, err := s.GetByCategory(category)
			if err != nil {
				return err
			}
			renderEntries(cmd, entries)
			return nil
		},
	}
}

func searchCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find entries whose title or body contains the keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			s, err := app.BuildStore()
			if err != nil {
				return err
			}

			results := s.Search(args[0])
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching entries")
				return nil
			}
			renderEntries(cmd, results)
			return nil
		},
	}
}

func validateCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the corpus and report structural problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			s, err := app.BuildStore()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d entries in %d categories\n",
				s.Len(), len(s.Categories()))
			return nil
		},
	}
}

func exportCmd(newApp func() (*App, error)) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded corpus to stdout in a portable format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			s, err := app.BuildStore()
			if err != nil {
				return err
			}

			return export.Export(cmd.OutOrStdout(), s, format)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "json", "output format (json, yaml, markdown)")
	return cmd
}

func watchCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the index whenever a corpus file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.Watch(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func joinCategories(categories []guideline.Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
