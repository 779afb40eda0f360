package main

import (
	"fmt"
	"strconv"

	"rxfacade/rx"

	"github.com/spf13/cobra"
)

// newPatternCommand creates a command taking a pattern and a text, and running fn with the compiled matcher.
func newPatternCommand(opts *rootOptions, use string, short string, fn func(m *rx.Matcher, text string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <pattern> <text>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := opts.readText(cmd, args[1])
			if err != nil {
				return err
			}

			m, err := opts.factory.Compile(args[0])
			if err != nil {
				return err
			}
			return fn(m, text)
		},
	}
}

func newIsMatchCommand(opts *rootOptions) *cobra.Command {
	return newPatternCommand(opts, "is-match", "Report whether the pattern matches anywhere in the text", func(m *rx.Matcher, text string) error {
		opts.results.IsMatch("is-match", m.String(), text, m.IsMatch(text))
		return nil
	})
}

func newIsMatchFromCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "is-match-from <pattern> <text> <start>",
		Short: "Report whether the pattern matches the text at or after a byte offset",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid start offset %q: %w", args[2], err)
			}

			text, err := opts.readText(cmd, args[1])
			if err != nil {
				return err
			}

			m, err := opts.factory.Compile(args[0])
			if err != nil {
				return err
			}

			matched, err := m.IsMatchFrom(text, start)
			if err != nil {
				return err
			}
			opts.results.IsMatch("is-match-from", m.String(), text, matched)
			return nil
		},
	}
}

func newFindCommand(opts *rootOptions) *cobra.Command {
	return newPatternCommand(opts, "find", "Print the first match", func(m *rx.Matcher, text string) error {
		match, found := m.FindFirst(text)
		opts.results.Find(m.String(), text, match, found)
		return nil
	})
}

func newFindAllCommand(opts *rootOptions) *cobra.Command {
	return newPatternCommand(opts, "find-all", "Print every non-overlapping match", func(m *rx.Matcher, text string) error {
		opts.results.FindAll(m.String(), text, m.FindAll(text))
		return nil
	})
}

func newSpansCommand(opts *rootOptions) *cobra.Command {
	return newPatternCommand(opts, "spans", "Print the byte offsets of every non-overlapping match", func(m *rx.Matcher, text string) error {
		opts.results.Spans(m.String(), text, m.MatchSpans(text))
		return nil
	})
}

func newCapturesCommand(opts *rootOptions) *cobra.Command {
	return newPatternCommand(opts, "captures", "Print the capture groups of the first match", func(m *rx.Matcher, text string) error {
		all := []rx.CaptureSet{}
		if caps, ok := m.Captures(text); ok {
			all = append(all, caps)
		}
		opts.results.Captures("captures", m.String(), text, all)
		return nil
	})
}

func newAllCapturesCommand(opts *rootOptions) *cobra.Command {
	return newPatternCommand(opts, "all-captures", "Print the capture groups of every match", func(m *rx.Matcher, text string) error {
		opts.results.Captures("all-captures", m.String(), text, m.AllCaptures(text))
		return nil
	})
}
