package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSetCommand(opts *rootOptions) *cobra.Command {
	var text, setName string

	cmd := &cobra.Command{
		Use:   "set [patterns...] --text <text>",
		Short: "Report which patterns of a set match the text",
		Long: `Compile the patterns into one set and print the index of every pattern that matches the text.

The patterns are either given as arguments or taken from a named set of the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if setName != "" {
				if len(args) > 0 {
					return errors.New("patterns cannot be given both as arguments and with --set")
				}
				var ok bool
				patterns, ok = opts.cfg.Sets[setName]
				if !ok {
					return fmt.Errorf("unknown pattern set %q, known sets are %v", setName, opts.cfg.SetNames())
				}
			}

			t, err := opts.readText(cmd, text)
			if err != nil {
				return err
			}

			s, err := opts.factory.CompileSet(patterns)
			if err != nil {
				return err
			}

			opts.results.SetMatches(s.Patterns(), t, s.MatchingIndices(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "text to match against, \"-\" reads it from stdin")
	cmd.Flags().StringVar(&setName, "set", "", "name of a pattern set from the config file")
	return cmd
}
