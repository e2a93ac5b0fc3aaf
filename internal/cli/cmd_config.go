package cli

const (
	procsFlag   = "procs"
	quantumFlag = "quantum"
	ticksFlag   = "ticks"
	debugFlag   = "debug"
)

// runOptions is the subset of flags a subcommand needs to drive a Kernel,
// read once per invocation via newOptions.
type runOptions struct {
	procs   int
	quantum int
	ticks   int
	debug   bool
}

// CLI flags to initialize.
func init() {
	runCmd.Flags().IntP(procsFlag, "p", 3, "number of processes to fork off init")
	runCmd.Flags().IntP(quantumFlag, "q", 0, "quantum in ticks (0 uses the kernel default)")
	runCmd.Flags().IntP(ticksFlag, "t", 200, "number of timer ticks to simulate")
	runCmd.Flags().Bool(debugFlag, false, "enable the stats transition assertion")

	statsCmd.Flags().IntP(procsFlag, "p", 3, "number of processes to fork off init")
	statsCmd.Flags().IntP(quantumFlag, "q", 0, "quantum in ticks (0 uses the kernel default)")
	statsCmd.Flags().IntP(ticksFlag, "t", 200, "number of timer ticks to simulate")
}
