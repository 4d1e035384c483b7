// Package cmd implements the CLI commands for postfmt using Cobra.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/postfmt/config"
	"github.com/gaurav-prasanna/postfmt/core"
	"github.com/gaurav-prasanna/postfmt/core/pipeline"
)

var (
	flagConfig string

	cfg    *viper.Viper
	logger hclog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "postfmt",
	Short: "postfmt — format marked-up text for plain-text post fields",
	Long: `postfmt turns HTML and Markdown-style emphasis into plain text for
social-media post fields: bold and italic become Unicode letterforms,
lists become bullet lines.

Usage:
  postfmt format [file] [flags]
  postfmt serve [flags]
  postfmt markdown [file]`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = viper.New()
		if flagConfig != "" {
			cfg.SetConfigFile(flagConfig)
		}
		if err := config.Load(cfg); err != nil {
			return err
		}
		logger = config.NewLogger(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (yaml|toml|json)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newFormatter builds a Formatter from the loaded config.
func newFormatter(lenient bool) *pipeline.Formatter {
	policy := config.Policy(cfg)
	if lenient {
		policy = core.PolicyLenient
	}
	return pipeline.New(pipeline.Options{
		Policy:       policy,
		BulletGlyph:  cfg.GetString("bullet.glyph"),
		GuardBullets: cfg.GetBool("bullet.guard"),
		Logger:       logger.Named("pipeline"),
	})
}

// readInput reads the file named by args[0], or stdin when there is no
// argument or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "-", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), args[0], nil
}
