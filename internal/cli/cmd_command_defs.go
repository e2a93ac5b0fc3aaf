package cli

import (
	"github.com/spf13/cobra"
)

var zeosctlCmd = &cobra.Command{
	Use:   "zeosctl",
	Short: "Drive a process-management and scheduling core for inspection.",
	Run:   runZeosctl,
}

var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Boot a kernel (idle + init) and print the initial task table.",
	Run:   runBoot,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fork a batch of processes, advance the clock, and print the resulting task table.",
	Run:   runRun,
}

var forkDemoCmd = &cobra.Command{
	Use:     "fork-demo",
	Aliases: []string{"fork"},
	Short:   "Fork a single child off init and show the before/after task table.",
	Run:     runForkDemo,
}

var statsCmd = &cobra.Command{
	Use:   "stats [pid]",
	Short: "Run a batch and print the accounting record for one process.",
	Run:   runStats,
}
