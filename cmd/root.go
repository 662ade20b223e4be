package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gostor/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gostor",
	Short: "Self-Storage Partition Cost Estimator",
	Long: `gostor - Self-Storage Partition Cost Estimator

A CLI tool for estimating partition wall and door quantities and costs
for self-storage fit-outs, using a linear-density model (mb of wall per
m² of usable box area) calibrated from two completed projects:
A (Bytom, H = 3.0 m) and B (Białystok, H = 2.5 m).

This tool helps fit-out planners perform:
  - Material and budget estimation for a given PUM and hall height
  - Height sensitivity analysis (cost of building taller)
  - Verification of the model against historical as-built data

Quantities covered: gray divider wall, white front wall (solid section
plus lintels above doors), kicker plate and the 0.75 m / 1.0 m door mix.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gostor v%-48s║\n", version.Version)
		fmt.Println("  ║   Self-Storage Partition Cost Estimator                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for estimating partition wall and door costs")
		fmt.Println("  for self-storage fit-outs (linear-density model).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Material and budget estimate from PUM and hall height")
		fmt.Println("    • Height sensitivity analysis with terminal and image charts")
		fmt.Println("    • Calibration check against historical projects")
		fmt.Println("    • JSON API server for integration")
		fmt.Println()
		fmt.Println("  Use 'gostor --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
