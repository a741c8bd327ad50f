package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	ExitOK = iota
	ExitRuntime
	ExitUsage
)

func main() {
	if err := run(os.Args[1:], DefaultConfig()); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fatal(ExitUsage, "%v", err)
		}
		fatal(ExitRuntime, "%v", err)
	}
}

func fatal(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
