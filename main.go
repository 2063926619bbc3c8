package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

// exitFunc defaults to os.Exit and is overridden in tests.
var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Args, os.Stdout, os.Stderr, time.Sleep))
}

// run executes the program against args (program name first) and returns
// the process exit status.
func run(args []string, stdout, stderr io.Writer, sleep func(time.Duration)) int {
	prog := "stimeout"
	rest := []string{}
	if len(args) > 0 {
		prog = args[0]
		rest = args[1:]
	}

	cfg, err := loadConfig()
	if err != nil {
		// Diagnostics are optional; never fail the sleep over them.
		cfg = Config{}
	}
	log := newLogger(cfg.LogLevel, stderr)
	defer log.Sync() //nolint:errcheck

	if err := checkInvocation(prog, rest); err != nil {
		log.Debug("rejected invocation", zap.Strings("args", rest), zap.Error(err))
		fmt.Fprintln(stderr, errorMessage(prog, err))
		return 1
	}

	cmd := newRootCmd(prog, stdout, log, sleep)
	cmd.SetArgs(rest)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, errorMessage(prog, err))
		return 1
	}
	return 0
}

// errorMessage returns the stderr line for err. Errors raised by cobra
// itself are reported as usage errors.
func errorMessage(prog string, err error) string {
	var u *usageError
	switch {
	case errors.As(err, &u):
		return fmt.Sprintf("Usage: %s time", u.prog)
	case errors.Is(err, ErrNumberOutOfRange):
		return "out of range time argument"
	case errors.Is(err, ErrInvalidNumber):
		return "Invalid time argument"
	default:
		return fmt.Sprintf("Usage: %s time", prog)
	}
}
