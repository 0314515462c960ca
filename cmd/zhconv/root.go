package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/zhconv"
)

var rootFlags struct {
	configFile string
	dataDir    string
	logLevel   string
}

// toolCfg holds the effective tool configuration after setup merges the
// config file and flags.
var toolCfg toolConfig

var rootCmd = &cobra.Command{
	Use:   "zhconv",
	Short: "Convert Chinese text between script variants",
	Long: `Zhconv converts Chinese text between Simplified, Traditional, Taiwan,
Hong Kong, and Japanese Shinjitai forms using dictionary-driven
longest-match substitution, compatible with OpenCC configurations and
dictionaries.

Conversions are named after their endpoints: s2t is Simplified to
Traditional, tw2sp is Taiwan to Simplified with Mainland idiom, and so
on. Run "zhconv configs" for the full list.`,
	Version:           Version,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configFile, "config", "", "tool configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.dataDir, "data-dir", "", "directory of configurations and dictionaries layered over the embedded ones")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig(rootFlags.configFile)
	if err != nil {
		return err
	}
	if rootFlags.dataDir != "" {
		cfg.DataDir = rootFlags.dataDir
	}
	if rootFlags.logLevel != "" {
		cfg.LogLevel = rootFlags.logLevel
	}
	toolCfg = cfg

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "", "warn":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (use debug, info, warn, or error)", s)
}

// newConverter builds a converter honoring the data directory override.
func newConverter(name string) (*zhconv.Converter, error) {
	opts := []zhconv.Option{zhconv.WithLogger(slog.Default())}
	if toolCfg.DataDir != "" {
		opts = append(opts, zhconv.WithResourceDir(toolCfg.DataDir))
	}
	return zhconv.New(name, opts...)
}
