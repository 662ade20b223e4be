package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gostor/internal/chart"
	"github.com/alexiusacademia/gostor/internal/estimator"
	"github.com/alexiusacademia/gostor/internal/server"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	// Sensitivity inputs
	sensPUM     float64
	sensHigh    float64
	sensLow     float64
	sensDoor075 float64
	sensDoor1M  float64

	// Output options
	sensJSON       bool
	sensShowChart  bool
	sensExportFile string
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Compare fit-out costs at two hall heights",
	Long: `Run the cost model at two hall heights with identical PUM and door
mix, and report the savings of building the lower hall.

Gray wall and the solid white section scale with height; lintels above
doors appear only above the 2.1 m door opening. Kicker length and door
count do not depend on height.

Examples:
  # Standard comparison, 3.0 m vs 2.5 m
  gostor sensitivity --pum 130 --door075 0.6 --door1m 0.4

  # Custom heights with a terminal chart
  gostor sensitivity --pum 130 --high 3.2 --low 2.7 --chart`,
	RunE: runSensitivity,
}

func init() {
	rootCmd.AddCommand(sensitivityCmd)

	sensitivityCmd.Flags().Float64VarP(&sensPUM, "pum", "p", 0, "Usable box floor area PUM (m²) [required]")
	sensitivityCmd.Flags().Float64Var(&sensHigh, "high", estimator.DefaultHeightHigh, "Higher hall height (m)")
	sensitivityCmd.Flags().Float64Var(&sensLow, "low", estimator.DefaultHeightLow, "Lower hall height (m)")
	sensitivityCmd.Flags().Float64Var(&sensDoor075, "door075", estimator.DefaultDoorMix, "Share of 0.75 m doors (0..1)")
	sensitivityCmd.Flags().Float64Var(&sensDoor1M, "door1m", estimator.DefaultDoorMix, "Share of 1.0 m doors (0..1)")

	sensitivityCmd.MarkFlagRequired("pum")

	sensitivityCmd.Flags().BoolVar(&sensJSON, "json", false, "Print both reports and the analysis as JSON")
	sensitivityCmd.Flags().BoolVar(&sensShowChart, "chart", false, "Show ASCII cost-vs-height curve across the compared range")
	sensitivityCmd.Flags().StringVarP(&sensExportFile, "output", "o", "", "Export cost curve to file (png, svg, pdf)")
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	calc := estimator.NewDefault()

	repHigh, repLow, analysis, err := calc.Sensitivity(sensPUM, sensHigh, sensLow, sensDoor075, sensDoor1M)
	if err != nil {
		return err
	}

	if sensJSON {
		out, err := json.MarshalIndent(server.SensitivityResponse{
			High:     repHigh,
			Low:      repLow,
			Analysis: analysis,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printHeader("HEIGHT SENSITIVITY ANALYSIS")

	fmt.Println("INPUT DATA:")
	fmt.Println(sectionLine)
	fmt.Printf("  Box floor area (PUM):      %.2f m²\n", sensPUM)
	fmt.Printf("  Compared heights:          %.2f m vs %.2f m\n", sensHigh, sensLow)
	fmt.Printf("  Door mix 0.75 m / 1.00 m:  %.0f%% / %.0f%%\n", sensDoor075*100, sensDoor1M*100)
	fmt.Println()

	printMaterialReport(repHigh, fmt.Sprintf("H = %.2f m", analysis.HeightHigh))
	printMaterialReport(repLow, fmt.Sprintf("H = %.2f m", analysis.HeightLow))

	fmt.Println("SAVINGS OF BUILDING LOWER:")
	fmt.Println(sectionLine)
	fmt.Printf("  White wall (lintels):  %.2f PLN  (%.1f → %.1f m²)\n",
		analysis.SavingsWhite, analysis.WhiteHigh, analysis.WhiteLow)
	fmt.Printf("  Gray wall:             %.2f PLN  (%.1f → %.1f m²)\n",
		analysis.SavingsGray, analysis.GrayHigh, analysis.GrayLow)
	fmt.Println()
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  TOTAL SAVINGS = %.2f PLN              \n", analysis.SavingsTotal)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if sensShowChart || sensExportFile != "" {
		from, to := sensLow-0.2, sensHigh+0.2
		if from < 0.5 {
			from = 0.5
		}
		curve, err := chart.Sample(calc, sensPUM, sensDoor075, sensDoor1M, from, to, 41)
		if err != nil {
			return err
		}

		if sensShowChart {
			fmt.Println(curve.DrawASCII())
		}
		if sensExportFile != "" {
			if err := curve.Export(sensExportFile); err != nil {
				return fmt.Errorf("exporting chart: %w", err)
			}
			fmt.Printf("Chart exported to: %s\n", sensExportFile)
		}
	}

	return nil
}
