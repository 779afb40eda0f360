package main

import (
	"fmt"
	"io"
	"io/ioutil"

	"rxfacade/config"
	"rxfacade/encoding"
	"rxfacade/logging"
	"rxfacade/rx"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags, and the objects built from them before a command runs.
type rootOptions struct {
	configPath  string
	engine      string
	logLevel    string
	json        bool
	cacheDir    string
	resultsFile string
	escaped     bool

	cfg     *config.Main
	logger  zerolog.Logger
	factory *rx.Factory
	results logging.ResultsLogger
	closer  io.Closer
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rxmatch",
		Short: "Query compiled regular expressions",
		Long: `Compile a pattern, or a set of patterns, and run one query against a text.

Single pattern commands take the pattern and the text as arguments. The set command
reports which patterns of a set match the text. A text of "-" is read from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.closer != nil {
				return opts.closer.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.engine, "engine", config.EngineGo, fmt.Sprintf("regex engine. Can be one of: %v, %v, %v.", config.EngineGo, config.EngineRE2, config.EngineHyperscan))
	cmd.PersistentFlags().StringVar(&opts.logLevel, "loglevel", "error", "sets log level. Can be one of: debug, info, warn, error, fatal, panic.")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "write results as JSON objects, one per line")
	cmd.PersistentFlags().StringVar(&opts.cacheDir, "cache-dir", "", "directory for compiled hyperscan databases")
	cmd.PersistentFlags().BoolVar(&opts.escaped, "escaped", false, "decode %XX escapes in the text, so that any bytes can be matched")
	cmd.PersistentFlags().StringVar(&opts.resultsFile, "results-file", "", "if set, append JSON results to this file instead of writing them to stdout")

	cmd.AddCommand(newIsMatchCommand(opts))
	cmd.AddCommand(newIsMatchFromCommand(opts))
	cmd.AddCommand(newFindCommand(opts))
	cmd.AddCommand(newFindAllCommand(opts))
	cmd.AddCommand(newSpansCommand(opts))
	cmd.AddCommand(newCapturesCommand(opts))
	cmd.AddCommand(newAllCapturesCommand(opts))
	cmd.AddCommand(newSetCommand(opts))

	return cmd
}

// setup loads the config, lets flags given on the command line override it, and builds the engine, factory and results logger.
func (o *rootOptions) setup(cmd *cobra.Command) (err error) {
	o.cfg = config.Default()
	if o.configPath != "" {
		o.cfg, err = config.Load(o.configPath)
		if err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("engine") || o.configPath == "" {
		o.cfg.Engine = o.engine
	}
	if flags.Changed("loglevel") || o.configPath == "" {
		o.cfg.LogLevel = o.logLevel
	}
	if flags.Changed("cache-dir") {
		o.cfg.CacheDir = o.cacheDir
	}
	if err = o.cfg.Validate(); err != nil {
		return
	}

	o.logger, err = logging.NewLogger(cmd.ErrOrStderr(), o.cfg.LogLevel)
	if err != nil {
		return
	}

	e, err := newEngine(o.cfg, o.logger)
	if err != nil {
		return
	}
	o.factory = rx.NewFactory(o.logger, e)
	o.logger.Debug().Str("engine", o.cfg.Engine).Msg("Engine selected")

	switch {
	case o.resultsFile != "":
		f, ferr := logging.OpenResultsFile(&logging.LogFileSystemImpl{}, o.resultsFile)
		if ferr != nil {
			err = fmt.Errorf("failed to open results file %v: %w", o.resultsFile, ferr)
			return
		}
		o.closer = f
		o.results = logging.NewJSONResultsLogger(f)
	case o.json:
		o.results = logging.NewJSONResultsLogger(cmd.OutOrStdout())
	default:
		o.results = logging.NewTextResultsLogger(cmd.OutOrStdout())
	}
	return
}

// readText returns the text to match. "-" reads it from stdin.
func (o *rootOptions) readText(cmd *cobra.Command, arg string) (string, error) {
	text := arg
	if arg == "-" {
		bb, err := ioutil.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read text from stdin: %w", err)
		}
		text = string(bb)
	}

	if o.escaped {
		return encoding.Unescape(text)
	}
	return text, nil
}
