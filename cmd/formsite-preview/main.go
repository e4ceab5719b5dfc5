package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	formsite "github.com/goliatone/go-formsite"
	"github.com/goliatone/go-formsite/pkg/preview"
	"github.com/goliatone/go-formsite/pkg/source"
)

var CLI struct {
	Location string `arg:"" help:"Published form URL or local HTML file"`
	Format   string `short:"f" help:"Output format (json or form)" enum:"json,form" default:"json"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("formsite-preview"),
		kong.Description("Answer a published survey form in the terminal and print the submission."),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	ctx := context.Background()

	src, err := source.Parse(CLI.Location)
	if err != nil {
		slog.Error("Invalid location", "error", err)
		os.Exit(1)
	}

	questions, err := formsite.Extract(ctx, src, formsite.WithLogger(logger))
	if err != nil {
		slog.Error("Extraction failed", "error", err)
		os.Exit(1)
	}

	p := preview.New(preview.WithOutputFormat(preview.OutputFormat(CLI.Format)))
	out, err := p.Render(ctx, questions)
	if err != nil {
		slog.Error("Preview failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
