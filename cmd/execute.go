// Package cmd is the top-level "driver" package for devcalc: it parses the
// command line, loads the configuration, and runs the requested subcommand.
package cmd

import (
	"devcalc/common"
	"devcalc/config"
	"devcalc/logging"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `devcalc` application and exits with its status.
func Execute() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout))
}

// run runs the `devcalc` application with the given command-line arguments and
// returns the exit status.  Input that is not passed on the command line is
// read from stdin.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	logging.Initialize(stdout, common.DefaultLogLevel)

	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("devcalc", "devcalc evaluates integer, real and bitwise expressions and shows the result in every base", true)
	cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose", "debug"})
	cli.AddStringArg("config", "c", "the path to the config file", false)
	cli.AddSelectorArg("format", "f", "the output format", false, []string{logging.FormatTable, logging.FormatPlain, logging.FormatJSON, logging.FormatYAML})
	cli.AddFlag("no-prefix", "np", "hide the 0x, 0o and 0b prefixes")
	cli.AddFlag("no-color", "nc", "disable colored output")

	// olive reads every argument starting with `-` as a flag so input such as
	// `-16` is passed as `-e=-16` or on stdin
	evalCmd := cli.AddSubcommand("eval", "evaluate an expression", true)
	evalCmd.AddPrimaryArg("expression", "the expression to evaluate (defaults to stdin)", false)
	evalCmd.AddStringArg("expr", "e", "the expression to evaluate", false)

	decodeCmd := cli.AddSubcommand("decode", "decode a single numeric literal", true)
	decodeCmd.AddPrimaryArg("literal", "the literal to decode (defaults to stdin)", false)
	decodeCmd.AddStringArg("expr", "e", "the literal to decode", false)

	batchCmd := cli.AddSubcommand("batch", "evaluate one expression per line", true)
	batchCmd.AddPrimaryArg("file", "the file to read expressions from (defaults to stdin)", false)

	cli.AddSubcommand("repl", "start an interactive session", false)

	configCmd := cli.AddSubcommand("config", "manage the config file", true)
	configInitCmd := configCmd.AddSubcommand("init", "write a config file holding the defaults", true)
	configInitCmd.AddPrimaryArg("dir", "the directory to write the config file to", false)

	cli.AddSubcommand("version", "print the devcalc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return 2
	}

	// process the inputed command line; neither `version` nor `config`
	// depend on the configuration file
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "version":
		logging.PrintInfoMessage("devcalc Version", common.Version)
		return 0
	case "config":
		return execConfigCommand(subResult)
	case "":
		logging.PrintErrorMessage("CLI Usage Error", errors.New("missing subcommand: expected one of eval, decode, batch, repl, config, version"))
		return 2
	}

	cfg, err := loadConfig(result, subResult)
	if err != nil {
		logging.LogConfigError("Config", err.Error())
		return 1
	}

	logging.Initialize(stdout, cfg.LogLevel)
	if !cfg.Color {
		logging.DisableColor()
	}

	s := newSession(cfg, stdout, os.Stderr)
	s.trace.Debug().Str("config", cfg.Path).Str("subcommand", subcmdName).Msg("starting")

	switch subcmdName {
	case "eval", "decode":
		input, err := inputArg(subResult, stdin)
		if err != nil {
			logging.LogStdError("Input Error", err)
			return 1
		}

		if subcmdName == "eval" {
			s.evaluate(input)
		} else {
			s.decode(input)
		}
	case "batch":
		return execBatchCommand(s, subResult, stdin)
	case "repl":
		if err := s.runREPL(stdin); err != nil {
			logging.LogStdError("Input Error", err)
		}

		return 0
	}

	if !logging.ShouldProceed() {
		return 1
	}

	return 0
}

// inputArg returns the input of `eval` or `decode`: the `expr` argument, the
// primary argument, or else all of stdin.
func inputArg(result *olive.ArgParseResult, stdin io.Reader) (string, error) {
	if v, ok := result.Arguments["expr"]; ok {
		return v.(string), nil
	}

	if arg, ok := result.PrimaryArg(); ok && arg != "" {
		return arg, nil
	}

	buff, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}

	return strings.TrimSpace(string(buff)), nil
}

// loadConfig loads the configuration file and applies the command-line
// overrides to it.  Options are written after the subcommand so they are looked
// up in both the root and the subcommand results.
func loadConfig(results ...*olive.ArgParseResult) (*config.Config, error) {
	explicit, _ := lookupArg("config", results)

	cfg, err := config.LoadDefault(explicit)
	if err != nil {
		return nil, err
	}

	if v, ok := lookupArg("loglevel", results); ok {
		cfg.LogLevel = v
	}

	if v, ok := lookupArg("format", results); ok {
		cfg.Format = v
	}

	if hasFlag("no-prefix", results) {
		cfg.Prefix = false
	}

	if hasFlag("no-color", results) {
		cfg.Color = false
	}

	return cfg, cfg.Validate()
}

// lookupArg returns the value of the first named argument found in results.
func lookupArg(name string, results []*olive.ArgParseResult) (string, bool) {
	for _, result := range results {
		if result == nil {
			continue
		}

		if v, ok := result.Arguments[name]; ok {
			return v.(string), true
		}
	}

	return "", false
}

// hasFlag reports whether the named flag was set in any of results.
func hasFlag(name string, results []*olive.ArgParseResult) bool {
	for _, result := range results {
		if result != nil && result.HasFlag(name) {
			return true
		}
	}

	return false
}

// execBatchCommand executes the batch subcommand and handles all errors
func execBatchCommand(s *session, result *olive.ArgParseResult, stdin io.Reader) int {
	in := stdin
	if path, ok := result.PrimaryArg(); ok && path != "" {
		f, err := os.Open(path)
		if err != nil {
			logging.LogStdError("Batch Error", err)
			return 1
		}
		defer f.Close()

		in = f
	}

	failures, err := s.runBatch(in)
	if err != nil {
		logging.LogStdError("Batch Error", err)
		return 1
	}

	if failures > 0 {
		return 1
	}

	return 0
}

// execConfigCommand executes the `config` subcommand and its subcommands.  It
// handles all errors related to this command
func execConfigCommand(result *olive.ArgParseResult) int {
	subcmdName, subResult, _ := result.Subcommand()

	switch subcmdName {
	case "init":
		dir, ok := subResult.PrimaryArg()
		if !ok || dir == "" {
			defaultPath, _ := config.Locate("")
			if defaultPath == "" {
				logging.PrintErrorMessage("Config Init Error", errors.New("no user config directory: pass a directory explicitly"))
				return 1
			}

			dir = filepath.Dir(defaultPath)
		}

		path, err := config.Init(dir)
		if err != nil {
			logging.PrintErrorMessage("Config Init Error", err)
			return 1
		}

		logging.PrintInfoMessage("Config", fmt.Sprintf("wrote %s", path))
		return 0
	}

	logging.PrintErrorMessage("CLI Usage Error", errors.New("missing config subcommand: expected init"))
	return 2
}
