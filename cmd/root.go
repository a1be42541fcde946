package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/kuku/internal/drill"
)

// newRootCmd builds the command tree. Flags are bound per tree so tests can
// run commands side by side.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kuku",
		Short: "Multiplication table drill with kuku chant readings",
		Long: `Kuku drills the 9x9 multiplication table in shuffled order.

Each question shows the traditional chant reading above the factors, the
answer stays hidden until revealed, and any question can be saved for a
review list shown at the end.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int("from", drill.MinDan, "First dan to drill, 1-9 (overrides KUKU_FROM)")
	flags.Int("to", drill.MaxDan, "Last dan to drill, 1-9 (overrides KUKU_TO)")
	flags.Bool("chant", true, "Show chant readings (overrides KUKU_CHANT)")
	flags.Uint64("seed", 0, "Shuffle seed, 0 for random (overrides KUKU_SEED)")
	flags.String("log-file", "", "Write structured logs to this file (overrides KUKU_LOG_FILE)")

	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}
