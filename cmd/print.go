package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kuku/internal/chant"
	"github.com/abhisek/kuku/internal/drill"
)

func newPrintCmd() *cobra.Command {
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the question list for a dan range",
		Long: `Print the questions of a drill, one per line, in the shuffled order the
TUI would use. --seed makes the order reproducible; the seed in use is
written to stderr.`,
		RunE: runPrint,
	}
	printCmd.Flags().Bool("ordered", false, "Print in table order instead of shuffled")
	printCmd.Flags().Bool("answers", false, "Include the product")
	return printCmd
}

func runPrint(cmd *cobra.Command, args []string) error {
	ordered, _ := cmd.Flags().GetBool("ordered")
	answers, _ := cmd.Flags().GetBool("answers")

	cfg, r, gen, err := loadDrill(cmd)
	if err != nil {
		return err
	}

	var qs []drill.Question
	if ordered {
		qs = drill.Generate(r)
	} else {
		qs = gen.Shuffled(r)
		fmt.Fprintf(cmd.ErrOrStderr(), "seed: %d\n", gen.Seed())
	}

	out := cmd.OutOrStdout()
	for _, q := range qs {
		line := q.String()
		if answers {
			line = fmt.Sprintf("%-5s = %2d", line, q.Product())
		}
		if cfg.Chant {
			reading := chant.Chant(q.Multiplicand, q.Multiplier)
			if answers {
				reading += " " + chant.Number(q.Product())
			}
			line = fmt.Sprintf("%-12s  %s", line, reading)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
