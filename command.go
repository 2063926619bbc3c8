package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCmd builds the single command. Flag parsing is disabled so every
// token, including negative numbers like "-5", is a positional argument.
func newRootCmd(prog string, stdout io.Writer, log *zap.Logger, sleep func(time.Duration)) *cobra.Command {
	cmd := &cobra.Command{
		Use:                prog + " time",
		Short:              "Sleep for the given number of seconds",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Args: func(cmd *cobra.Command, args []string) error {
			if err := validateArgs(prog, args); err != nil {
				log.Debug("rejected arguments", zap.Strings("args", args))
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := parseSeconds(args[0])
			if err != nil {
				log.Debug("rejected time argument", zap.Error(err))
				return err
			}

			d := secondsToDuration(seconds)
			log.Debug("parsed time argument", zap.Int("seconds", seconds), zap.Duration("duration", d))

			fmt.Fprintf(stdout, "Sleeping for %d seconds\n", seconds)

			start := time.Now()
			sleep(d)
			log.Debug("sleep finished", zap.Duration("elapsed", time.Since(start)))
			return nil
		},
	}
	cmd.SetOut(stdout)
	return cmd
}

func validateArgs(prog string, args []string) error {
	if len(args) != 1 {
		return &usageError{prog: prog, got: len(args)}
	}
	return nil
}

// checkInvocation rejects args before they reach cobra. Execute dispatches
// the hidden completion commands by name ahead of the Args validator, so
// those names must never get that far.
func checkInvocation(prog string, args []string) error {
	if err := validateArgs(prog, args); err != nil {
		return err
	}
	switch args[0] {
	case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		_, err := parseSeconds(args[0])
		return err
	}
	return nil
}
