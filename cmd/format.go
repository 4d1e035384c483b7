// Package cmd — format command.
// This is the main command that runs the pipeline over one input:
// read (file, stdin or --url) → format → render → write.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postfmt/core"
	"github.com/gaurav-prasanna/postfmt/core/fetch"
	"github.com/gaurav-prasanna/postfmt/core/output"
	"github.com/gaurav-prasanna/postfmt/core/render"
)

// Flag variables.
var (
	flagURL       string
	flagLenient   bool
	flagJSON      bool
	flagSplit     int
	flagOutputDir string
)

// newFetcher builds the Fetcher used by --url.
var newFetcher = func(timeout time.Duration) core.Fetcher {
	return fetch.New(timeout)
}

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Format a file, stdin, or a web page for a post field",
	Long: `Format reads marked-up text, converts emphasis to Unicode letterforms,
normalizes lists and whitespace, and prints plain text ready to paste.

Examples:
  echo '**Launch day!** _finally_' | postfmt format
  postfmt format draft.html --split 280
  postfmt format --url https://example.com/blog/post --output_dir ./out
  postfmt format notes.md --json --lenient`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVar(&flagURL, "url", "", "Fetch and format a web page instead of a file")
	formatCmd.Flags().BoolVar(&flagLenient, "lenient", false, "Keep unmatched markers as literal text instead of failing")
	formatCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the JSON response body")
	formatCmd.Flags().IntVar(&flagSplit, "split", -1, "Split output into parts of at most N characters (default: split.max_chars)")
	formatCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Write output to this directory instead of stdout")
}

func runFormat(cmd *cobra.Command, args []string) error {
	if err := validateFlags(args); err != nil {
		return err
	}

	text, source, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	maxChars := cfg.GetInt("split.max_chars")
	if flagSplit >= 0 {
		maxChars = flagSplit
	}

	res := newFormatter(flagLenient).FormatResult(text, maxChars)

	renderer := selectRenderer()
	data, err := renderer.Render(res)
	if err != nil {
		return err
	}

	if flagOutputDir != "" {
		writer, err := output.New(flagOutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
		path, err := writer.Write(source, data, renderer.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	// JSON output carries the error in the body; still exit non-zero.
	return res.Err
}

// loadInput returns the text to format and the source it came from.
func loadInput(cmd *cobra.Command, args []string) (string, string, error) {
	if flagURL == "" {
		return readInput(cmd, args)
	}

	fetcher := newFetcher(cfg.GetDuration("fetch.timeout"))
	result, err := fetcher.Fetch(context.Background(), flagURL)
	if err != nil {
		return "", "", fmt.Errorf("fetch: %w", err)
	}
	logger.Debug("fetched page", "url", flagURL, "bytes", len(result.HTML))
	return result.HTML, flagURL, nil
}

// validateFlags checks that --url and a file argument are not both given
// and that the URL is absolute.
func validateFlags(args []string) error {
	if flagURL == "" {
		return nil
	}
	if len(args) > 0 {
		return fmt.Errorf("--url and a file argument are mutually exclusive")
	}
	parsed, err := url.Parse(flagURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", flagURL)
	}
	return nil
}

// selectRenderer creates the Renderer chosen by flags.
func selectRenderer() core.Renderer {
	if flagJSON {
		return render.NewJSONRenderer()
	}
	return render.NewTextRenderer()
}
