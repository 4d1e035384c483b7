// Package config resolves postfmt settings with Viper.
// Precedence: defaults < config file < POSTFMT_* environment < flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/postfmt/core"
)

// ConfigOption describes one setting and its default.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration options and their meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "http_addr", Default: ":5000", Comment: "Listen address for `postfmt serve`"},
		{Key: "policy", Default: string(core.PolicyStrict), Comment: "Unmatched marker handling: strict rejects, lenient keeps them literally"},
		{Key: "bullet.glyph", Default: "•", Comment: "Glyph every list item is rendered with"},
		{Key: "bullet.guard", Default: false, Comment: "Prefix bullet lines with a space for surfaces that swallow a leading glyph"},
		{Key: "split.max_chars", Default: 0, Comment: "Split output into parts of at most this many characters (0 disables)"},
		{Key: "fetch.timeout", Default: "30s", Comment: "Timeout for `format --url`"},
		{Key: "log.level", Default: "info", Comment: "Log level: trace, debug, info, warn, error"},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration into v. Finding no config file on the search
// path is not an error; an explicit file that is missing or malformed is.
func Load(v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("postfmt")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "postfmt"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "postfmt"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("postfmt")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, ok := core.ParsePolicy(v.GetString("policy")); !ok {
		return fmt.Errorf("invalid policy %q: want strict or lenient", v.GetString("policy"))
	}
	if v.GetInt("split.max_chars") < 0 {
		return fmt.Errorf("split.max_chars must not be negative")
	}
	return nil
}

// Policy returns the configured marker policy.
func Policy(v *viper.Viper) core.Policy {
	p, _ := core.ParsePolicy(v.GetString("policy"))
	return p
}

// NewLogger builds the root logger at the configured level.
func NewLogger(v *viper.Viper) hclog.Logger {
	level := hclog.LevelFromString(v.GetString("log.level"))
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "postfmt",
		Level:  level,
		Output: os.Stderr,
	})
}
