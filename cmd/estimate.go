package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gostor/internal/chart"
	"github.com/alexiusacademia/gostor/internal/estimator"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	// Estimate inputs
	estimatePUM     float64
	estimateHeight  float64
	estimateDoor075 float64
	estimateDoor1M  float64

	// Output options
	estimateJSON       bool
	estimateShowChart  bool
	estimateExportFile string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate partition quantities and costs for a fit-out",
	Long: `Calculate wall areas, kicker length, door count and the full cost
budget for a self-storage fit-out of a given usable box area (PUM) and
hall height.

The linear-density model assumes:
  - Gray (divider) wall scales with PUM and hall height
  - Kicker plate length scales with PUM only
  - White wall = solid front section + lintels above doors (H − 2.1 m)

Examples:
  # 130 m² of boxes in a 2.7 m hall, 60% narrow doors
  gostor estimate --pum 130 --height 2.7 --door075 0.6 --door1m 0.4

  # Machine-readable output
  gostor estimate --pum 130 --height 2.7 --json

  # Cost curve around the chosen height, exported to a file
  gostor estimate --pum 130 --height 2.7 --chart -o curve.png`,
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	// Sizing flags
	estimateCmd.Flags().Float64VarP(&estimatePUM, "pum", "p", 0, "Usable box floor area PUM (m²) [required]")
	estimateCmd.Flags().Float64Var(&estimateHeight, "height", 0, "Hall clear height (m) [required]")

	// Door mix flags
	estimateCmd.Flags().Float64Var(&estimateDoor075, "door075", estimator.DefaultDoorMix, "Share of 0.75 m doors (0..1)")
	estimateCmd.Flags().Float64Var(&estimateDoor1M, "door1m", estimator.DefaultDoorMix, "Share of 1.0 m doors (0..1)")

	estimateCmd.MarkFlagRequired("pum")
	estimateCmd.MarkFlagRequired("height")

	// Output options
	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "Print the report as JSON")
	estimateCmd.Flags().BoolVar(&estimateShowChart, "chart", false, "Show ASCII cost-vs-height curve around the chosen height")
	estimateCmd.Flags().StringVarP(&estimateExportFile, "output", "o", "", "Export cost curve to file (png, svg, pdf)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	calc := estimator.NewDefault()

	rep, err := calc.Estimate(estimator.Input{
		PUM:           estimatePUM,
		Height:        estimateHeight,
		PctDoorNarrow: estimateDoor075,
		PctDoorWide:   estimateDoor1M,
	})
	if err != nil {
		return err
	}

	if estimateJSON {
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printHeader("SELF-STORAGE PARTITION COST ESTIMATE")
	printInputs(estimatePUM, estimateHeight, estimateDoor075, estimateDoor1M)
	printMaterialReport(rep, "QUANTITIES AND BUDGET")

	if estimateShowChart || estimateExportFile != "" {
		from, to := estimateHeight-0.5, estimateHeight+0.5
		if from < 0.5 {
			from = 0.5
		}
		curve, err := chart.Sample(calc, estimatePUM, estimateDoor075, estimateDoor1M, from, to, 41)
		if err != nil {
			return err
		}

		if estimateShowChart {
			fmt.Println(curve.DrawASCII())
		}
		if estimateExportFile != "" {
			if err := curve.Export(estimateExportFile); err != nil {
				return fmt.Errorf("exporting chart: %w", err)
			}
			fmt.Printf("Chart exported to: %s\n", estimateExportFile)
		}
	}

	return nil
}
