package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"

	formsite "github.com/goliatone/go-formsite"
	"github.com/goliatone/go-formsite/pkg/config"
	"github.com/goliatone/go-formsite/pkg/question"
)

var CLI struct {
	URL          string `arg:"" help:"Published form URL (or a local HTML file)"`
	OutputPath   string `arg:"" help:"Directory the Jekyll site is written to"`
	TemplatePath string `arg:"" optional:"" help:"Template directory (defaults to the built-in set)"`
	Key          string `short:"k" help:"Form key written to the site config (derived from the URL when omitted)"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("formsite"),
		kong.Description("Generate a Jekyll site from a published survey form."),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(context.Background(), logger, os.Stdout); err != nil {
		slog.Error("Generation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, stdout io.Writer) error {
	env, err := config.FromEnv()
	if err != nil {
		return err
	}
	cfg, err := config.Merge(env, config.Config{
		OutputDir:   CLI.OutputPath,
		TemplateDir: CLI.TemplatePath,
	})
	if err != nil {
		return err
	}

	result, err := formsite.Generate(ctx, CLI.URL, cfg,
		formsite.WithLogger(logger),
		formsite.WithKey(CLI.Key),
	)
	if err != nil {
		return err
	}

	printSummary(stdout, result.Questions)
	fmt.Fprintf(stdout, "Site written to %s\n", CLI.OutputPath)
	return nil
}

func printSummary(w io.Writer, questions []question.Question) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Key", "Type", "Name", "Required", "Choices", "Label"})

	for _, q := range questions {
		t.AppendRow(table.Row{q.Key(), q.Type, q.Name, q.Required, len(q.Choices), q.Label})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
