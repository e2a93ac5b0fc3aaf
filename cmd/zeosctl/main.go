package main

import (
	"fmt"
	"os"

	"github.com/griera/zeos/internal/cli"
)

func main() {
	zeosctlCmd := cli.SetupCLI()
	if err := zeosctlCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
