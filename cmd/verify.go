package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostor/internal/estimator"
	"github.com/alexiusacademia/gostor/internal/pricing"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the model against historical as-built projects",
	Long: `Recompute the calibration projects with the current density
coefficients and print signed differences against their as-built
quantities.

A non-zero difference is a calibration discrepancy and is reported as
such; the model never adjusts its coefficients to absorb it.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	calc := estimator.NewDefault()

	printHeader("CALIBRATION CHECK AGAINST HISTORICAL PROJECTS")

	checked := 0
	for _, p := range pricing.HistoricalProjects {
		if !p.HasReference() {
			fmt.Printf("Project %s (%s): no as-built quantities recorded, skipped.\n\n", p.ID, p.Location)
			continue
		}

		rep, err := calc.Estimate(estimator.Input{
			PUM:           p.PUM,
			Height:        p.Height,
			PctDoorNarrow: p.PctDoorNarrow,
			PctDoorWide:   p.PctDoorWide,
		})
		if err != nil {
			return fmt.Errorf("project %s: %w", p.ID, err)
		}
		checked++

		fmt.Printf("PROJECT %s (%s) — PUM %.1f m², H %.1f m:\n", p.ID, p.Location, p.PUM, p.Height)
		fmt.Println(sectionLine)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Quantity\tComputed\tAs-built\tDifference\n")
		fmt.Fprintf(w, "  ────────\t────────\t────────\t──────────\n")
		if p.GrayArea > 0 {
			fmt.Fprintf(w, "  Gray wall (m²)\t%.2f\t%.2f\t%+.2f\n", rep.GrayArea, p.GrayArea, rep.GrayArea-p.GrayArea)
		}
		if p.WhiteArea > 0 {
			fmt.Fprintf(w, "  White wall (m²)\t%.2f\t%.2f\t%+.2f\n", rep.WhiteArea, p.WhiteArea, rep.WhiteArea-p.WhiteArea)
		}
		if p.KickerLength > 0 {
			fmt.Fprintf(w, "  Kicker plate (mb)\t%.2f\t%.2f\t%+.2f\n", rep.KickerLength, p.KickerLength, rep.KickerLength-p.KickerLength)
		}
		w.Flush()
		fmt.Println()
	}

	if checked == 0 {
		fmt.Println("No historical project carries reference quantities.")
	}
	return nil
}
