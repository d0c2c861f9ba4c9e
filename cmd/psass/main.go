package main

import "fmt"
import "io"
import "log/slog"
import "os"

import "github.com/spf13/cobra"

import "github.com/alexcrichton/go-sass"
import _ "github.com/alexcrichton/go-sass/libsass"

var (
	flagStyle          string
	flagSourceComments string
	flagIncludePaths   []string
	flagImagePath      string
	flagConfig         string
	flagOutput         string
	flagLogLevel       string
	flagLogFormat      string
)

var rootCmd = &cobra.Command{
	Use:   "psass [flags] [FILE]",
	Short: "Compile Sass to CSS",
	Long:  "Compile Sass to CSS.\n\nReads FILE, or standard input when FILE is omitted or \"-\".",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCompiler(cmd)
		if err != nil {
			return err
		}

		var css string
		if len(args) == 0 || args[0] == "-" {
			src, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			css, err = c.Compile(string(src))
			if err != nil {
				return err
			}
		} else {
			css, err = c.CompileFile(args[0])
			if err != nil {
				return err
			}
		}

		if flagOutput == "" || flagOutput == "-" {
			_, err = io.WriteString(cmd.OutOrStdout(), css)
			return err
		}
		return os.WriteFile(flagOutput, []byte(css), 0644)
	},
}

func init() {
	addFlags(rootCmd)
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write CSS here instead of stdout")

	rootCmd.AddCommand(buildCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// addFlags registers the compile option flags shared by every command.
func addFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flagStyle, "style", "t", "",
		"output style: nested, expanded or compressed (default compressed)")
	pf.StringVar(&flagSourceComments, "source-comments", "",
		"source comments: none, default or map (default none)")
	pf.StringArrayVarP(&flagIncludePaths, "include-path", "I", nil,
		"directory searched by @import (repeatable)")
	pf.StringVar(&flagImagePath, "image-path", "", "base path for image-url()")
	pf.StringVarP(&flagConfig, "config", "c", "", "YAML file with compile options")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "debug, info, warn or error")
	pf.StringVar(&flagLogFormat, "log-format", "text", "text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

// options merges the config file, if any, with the flags that were set.
// Flags win.
func options(cmd *cobra.Command) (sass.OptionsMap, error) {
	opts := sass.OptionsMap{}
	if flagConfig != "" {
		loaded, err := sass.LoadOptionsFile(flagConfig)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("style") {
		opts[sass.KeyOutputStyle] = flagStyle
	}
	if flags.Changed("source-comments") {
		opts[sass.KeySourceComments] = flagSourceComments
	}
	if flags.Changed("include-path") {
		opts[sass.KeyIncludePaths] = flagIncludePaths
	}
	if flags.Changed("image-path") {
		opts[sass.KeyImagePath] = flagImagePath
	}
	return opts, nil
}

func newCompiler(cmd *cobra.Command) (*sass.Compiler, error) {
	opts, err := options(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(flagLogLevel, flagLogFormat, cmd.ErrOrStderr())
	return sass.New(opts, sass.WithLogger(logger)), nil
}

func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
