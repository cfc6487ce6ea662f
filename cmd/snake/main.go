package main

import (
	"fmt"
	"os"

	"github.com/fchimpan/gh-kusa-snake/cmd"
	"github.com/fchimpan/gh-kusa-snake/internal/logging"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	deps := cmd.DefaultDeps()

	log, closeLog, err := logging.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; continuing without a log\n", err)
	}
	defer closeLog()
	deps.Logger = log

	root := cmd.NewRootCmd(deps)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
