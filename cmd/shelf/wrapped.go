package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshsymonds/shelf-wrapped/internal/common"
	"github.com/joshsymonds/shelf-wrapped/internal/ingest"
	"github.com/joshsymonds/shelf-wrapped/internal/model"
	"github.com/joshsymonds/shelf-wrapped/internal/recap"
	"github.com/joshsymonds/shelf-wrapped/internal/tui"
)

var promptStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7c3aed"))

func wrappedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrapped [file.csv]",
		Short: "Build your reading year in review from a library export",
		Long: `Build a year-in-review slide show from a reading-history CSV export.

Examples:
  # Goodreads export, current target year
  shelf wrapped ~/Downloads/goodreads_library_export.csv --format goodreads --name Ada

  # StoryGraph export for a different year, plain text output
  shelf wrapped export.csv --format storygraph --year 2024 --plain

  # Save the deck to a file for sharing
  shelf wrapped export.csv --format goodreads --out wrapped.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runWrapped,
	}

	cmd.Flags().StringP("format", "f", "", "export format (goodreads, storygraph)")
	cmd.Flags().IntP("year", "y", 0, "target year (default from config, 2025)")
	cmd.Flags().StringP("name", "n", "", "display name shown on the opening slide")
	cmd.Flags().Bool("plain", false, "print the deck as plain text instead of the slide show")
	cmd.Flags().StringP("out", "o", "", "also write the plain-text deck to this file")

	_ = viper.BindPFlag("wrapped.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("wrapped.name", cmd.Flags().Lookup("name"))

	return cmd
}

func runWrapped(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	plain, _ := cmd.Flags().GetBool("plain")
	outPath, _ := cmd.Flags().GetString("out")

	format, ok := model.ParseSourceFormat(viper.GetString("wrapped.format"))
	if !ok {
		return common.NewUserError("pick an export format with --format (goodreads or storygraph)", common.ErrUnknownFormat)
	}

	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = viper.GetInt("wrapped.year")
	}

	// The display name is required before the pipeline runs; prompt for it
	// when we have a terminal, reject otherwise.
	name := strings.TrimSpace(viper.GetString("wrapped.name"))
	if name == "" {
		var err error
		name, err = promptForName()
		if err != nil {
			return err
		}
	}

	src, err := ingest.ForFormat(format)
	if err != nil {
		return err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("could not open %s", filePath), common.ErrUnreadableFile)
	}
	defer f.Close()

	decoder := ingest.NewDecoder()
	if interactive() {
		decoder = decoder.WithProgress(os.Stderr)
	}

	rows, err := decoder.DecodeAll(cmd.Context(), f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return common.NewUserError("the export has a header but no books", common.ErrEmptyFile)
	}

	slog.Debug("Decoded export",
		"file", filePath,
		"format", format,
		"rows", len(rows))

	result := recap.Compute(src, rows, year)

	if outPath != "" {
		deck := tui.RenderPlain(tui.BuildSlides(result, name))
		if err := os.WriteFile(outPath, []byte(deck), 0o644); err != nil {
			return fmt.Errorf("failed to write deck to %s: %w", outPath, err)
		}
		slog.Info("Wrote deck", "path", outPath)
	}

	if plain || !interactive() {
		fmt.Print(tui.RenderPlain(tui.BuildSlides(result, name)))
		return nil
	}

	return tui.Run(cmd.Context(), result, name)
}

func promptForName() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", common.NewUserError("pass a display name with --name", common.ErrMissingName)
	}

	fmt.Fprint(os.Stderr, promptStyle.Render("What name should go on the slides?")+" → ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", common.NewUserError("could not read a display name", common.ErrMissingName)
	}

	name := strings.TrimSpace(line)
	if name == "" {
		return "", common.NewUserError("a display name is required", common.ErrMissingName)
	}
	return name, nil
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
