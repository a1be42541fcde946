package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kuku/internal/chant"
	"github.com/abhisek/kuku/internal/drill"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the chant recitation for each dan in range",
		RunE:  runTable,
	}
}

func runTable(cmd *cobra.Command, args []string) error {
	_, r, _, err := loadDrill(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	qs := drill.Generate(r)
	for i, q := range qs {
		if q.Multiplier == drill.MinDan {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d の段 (%s)\n", q.Multiplicand, q.ColorKey())
			fmt.Fprintln(out, strings.Repeat("─", 36))
		}
		fmt.Fprintf(out, "  %-10s  %s %s\n",
			fmt.Sprintf("%s = %d", q, q.Product()),
			chant.Chant(q.Multiplicand, q.Multiplier),
			chant.Number(q.Product()))
	}
	return nil
}
