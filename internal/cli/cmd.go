// Package cli wires the process-management core to a small cobra CLI,
// in the shape of arctir-proctor's proctor/cmd package: a root command, a
// handful of leaf subcommands, and table rendering via tablewriter.
package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/griera/zeos/internal/kernel"
)

// SetupCLI constructs the cobra hierarchy for the zeosctl CLI.
func SetupCLI() *cobra.Command {
	zeosctlCmd.AddCommand(bootCmd)
	zeosctlCmd.AddCommand(runCmd)
	zeosctlCmd.AddCommand(forkDemoCmd)
	zeosctlCmd.AddCommand(statsCmd)
	return zeosctlCmd
}

func runZeosctl(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		cmd.Help()
		os.Exit(0)
	}
}

// newOptions reads the flags a subcommand registered in cmd_config.go,
// in the shape of arctir-proctor's newOptions(fs *pflag.FlagSet).
func newOptions(fs *pflag.FlagSet) runOptions {
	procs, _ := fs.GetInt(procsFlag)
	quantum, _ := fs.GetInt(quantumFlag)
	ticks, _ := fs.GetInt(ticksFlag)
	debug, _ := fs.GetBool(debugFlag)
	return runOptions{procs: procs, quantum: quantum, ticks: ticks, debug: debug}
}

func newKernel(opts runOptions) *kernel.Kernel {
	cfg := kernel.Config{
		DefaultQuantum: opts.quantum,
		Console:        kernel.IOConsole{W: os.Stdout},
		Logger:         kernel.NewStdLogger(),
		Debug:          opts.debug,
	}
	return kernel.NewKernel(cfg)
}

// runBoot shows the boot state: idle at PID 0 (blocked, never ready), init
// at PID 1 (running), every other slot on the freequeue.
func runBoot(cmd *cobra.Command, args []string) {
	k := newKernel(runOptions{})
	fmt.Printf("booted: %d free slots, %d ready\n", k.FreeQueueLen(), k.ReadyQueueLen())
	output(renderSnapshot(k))
}

// runRun forks opts.procs children off init, then simulates opts.ticks
// timer ticks, printing the resulting task table. A child forked for the
// first time reports its fork return value (0) the moment it is first
// scheduled.
func runRun(cmd *cobra.Command, args []string) {
	opts := newOptions(cmd.Flags())
	k := newKernel(opts)

	for i := 0; i < opts.procs; i++ {
		pid := k.SysFork()
		if pid < 0 {
			fmt.Fprintf(os.Stderr, "fork failed: %s\n", kernel.Errno(-pid))
			break
		}
		fmt.Printf("forked pid %d\n", pid)
	}

	for i := 0; i < opts.ticks; i++ {
		prev := k.Current()
		k.TimerTick()
		cur := k.Current()
		if cur != prev && k.ConsumeForkReturn(cur) {
			fmt.Printf("tick %d: pid %d resumes for the first time, observes fork() == 0\n", i, cur.PID)
		}
	}

	output(renderSnapshot(k))
}

// runForkDemo forks a single child off init and prints the task table
// before and after, to make the freequeue -> readyqueue move visible.
func runForkDemo(cmd *cobra.Command, args []string) {
	k := newKernel(runOptions{})

	fmt.Println("before fork:")
	output(renderSnapshot(k))

	pid := k.SysFork()
	if pid < 0 {
		fmt.Fprintf(os.Stderr, "fork failed: %s\n", kernel.Errno(-pid))
		os.Exit(1)
	}
	fmt.Printf("\nforked child pid %d\n\n", pid)

	fmt.Println("after fork:")
	output(renderSnapshot(k))
}

// runStats runs the same batch as runRun, then prints the accounting
// record for a single requested PID.
func runStats(cmd *cobra.Command, args []string) {
	pid, err := parsePID(args)
	if err != nil {
		outputErrorAndFail(err.Error())
	}

	opts := newOptions(cmd.Flags())
	k := newKernel(opts)
	for i := 0; i < opts.procs; i++ {
		k.SysFork()
	}
	for i := 0; i < opts.ticks; i++ {
		k.TimerTick()
	}

	var st kernel.Stats
	if ret := k.SysGetStats(pid, &st); ret < 0 {
		outputErrorAndFail(fmt.Sprintf("get_stats(%d): %s", pid, kernel.Errno(-ret)))
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"field", "value"})
	table.AppendBulk([][]string{
		{"user_ticks", strconv.Itoa(st.UserTicks)},
		{"system_ticks", strconv.Itoa(st.SystemTicks)},
		{"ready_ticks", strconv.Itoa(st.ReadyTicks)},
		{"elapsed_total_ticks", strconv.Itoa(st.ElapsedTotalTicks)},
		{"transitions USER->SYS", strconv.Itoa(st.TotalTransUserToSys)},
		{"transitions SYS->USER", strconv.Itoa(st.TotalTransSysToUser)},
		{"transitions SYS->READY", strconv.Itoa(st.TotalTransSysToReady)},
		{"transitions READY->SYS", strconv.Itoa(st.TotalTransReadyToSys)},
		{"remaining_ticks", strconv.Itoa(st.RemainingTicks)},
	})
	table.Render()
	output(buf.Bytes())
}

func parsePID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("please provide a pid (int)")
	}
	pid, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("please pass a valid pid (int); we received: %s", args[0])
	}
	return pid, nil
}

func renderSnapshot(k *kernel.Kernel) []byte {
	rows := [][]string{}
	for _, s := range k.Snapshot() {
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			strconv.Itoa(s.PID),
			s.State.String(),
			fmt.Sprintf("%d/%d", s.Remain, s.Quantum),
			strconv.Itoa(s.Stats.UserTicks),
			strconv.Itoa(s.Stats.SystemTicks),
			strconv.Itoa(s.Stats.ReadyTicks),
		})
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"slot", "pid", "state", "slice/quantum", "user", "sys", "ready"})
	table.AppendBulk(rows)
	table.Render()
	return buf.Bytes()
}

func output(out []byte) {
	fmt.Printf("%s", out)
}

func outputErrorAndFail(msg string) {
	fmt.Println(msg)
	os.Exit(1)
}
