package main

import (
	"fmt"
	"net/netip"
	"unicode/utf8"

	"github.com/lixenwraith/confee"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// builtinDefaults are used for every key the file does not set
var builtinDefaults = []confee.Pair{
	{Key: "log", Value: "stdout"},
	{Key: "dir", Value: "/var/www/html/"},
	{Key: "addr", Value: "127.0.0.1"},
	{Key: "port", Value: "8080"},
}

type rootOptions struct {
	delim        string
	defaultsFile string
	dump         bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "confee <file>",
		Short: "Load a key/value configuration file over built-in defaults",
		Long: `confee reads a file of "key<delim>value" lines, applies it over the built-in
defaults (log, dir, addr, port) and prints the typed result.

Examples:
  confee ./example.conf
  confee --delim = --defaults defaults.toml ./example.conf
  confee --dump ./example.conf`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.delim, "delim", "d", string(confee.DefaultDelim), "Character separating keys from values")
	cmd.Flags().StringVar(&opts.defaultsFile, "defaults", "", "TOML, YAML or JSON file overriding the built-in defaults")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Print every key after the update")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func run(cmd *cobra.Command, path string, opts *rootOptions) error {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().
		Timestamp().
		Logger()

	delim, err := parseDelim(opts.delim)
	if err != nil {
		return err
	}

	defaults := append([]confee.Pair{}, builtinDefaults...)
	if opts.defaultsFile != "" {
		filePairs, err := confee.DefaultsFromFile(opts.defaultsFile)
		if err != nil {
			return err
		}
		defaults = append(defaults, filePairs...)
	}

	conf, err := confee.NewBuilder().
		WithDefaults(defaults...).
		WithDelim(delim).
		WithSource(path).
		WithLogger(logger).
		WithRequired("log", "dir", "addr", "port").
		Build()
	if err != nil {
		return fmt.Errorf("error updating configuration: %w", err)
	}
	logger.Info().Str("source", path).Msg("Successfully updated configuration")

	dir, err := confee.Get[string](conf, "dir")
	if err != nil {
		return err
	}
	addr, err := confee.Get[netip.Addr](conf, "addr")
	if err != nil {
		return err
	}
	port, err := confee.Get[uint16](conf, "port")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "log:  %s\n", conf.MustGetRaw("log"))
	fmt.Fprintf(out, "dir:  %s\n", dir)
	fmt.Fprintf(out, "addr: %s\n", addr)
	fmt.Fprintf(out, "port: %d\n", port)

	if opts.dump {
		fmt.Fprintln(out)
		fmt.Fprint(out, conf.String())
	}

	return nil
}

// parseDelim requires exactly one character
func parseDelim(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
