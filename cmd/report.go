package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostor/internal/estimator"
)

const sectionLine = "───────────────────────────────────────────────────────────────"

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printMaterialReport(r *estimator.MaterialReport, label string) {
	fmt.Printf("%s:\n", label)
	fmt.Println(sectionLine)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gray wall:\t%.2f m²\t%.2f PLN\n", r.GrayArea, r.CostGray)
	fmt.Fprintf(w, "  White wall:\t%.2f m²\t%.2f PLN\n", r.WhiteArea, r.CostWhite)
	fmt.Fprintf(w, "  Kicker plate:\t%.2f mb\t%.2f PLN\n", r.KickerLength, r.CostKicker)
	fmt.Fprintf(w, "  Doors (avg %.3f m):\t~%.1f pcs\t%.2f PLN\n", r.AvgDoorWidth, r.DoorCount, r.CostDoors)
	w.Flush()
	fmt.Println()
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  TOTAL = %.2f PLN              \n", r.CostTotal)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}

func printInputs(pum, height, pct075, pct1m float64) {
	fmt.Println("INPUT DATA:")
	fmt.Println(sectionLine)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Box floor area (PUM):\t%.2f m²\n", pum)
	fmt.Fprintf(w, "  Hall height (H):\t%.2f m\n", height)
	fmt.Fprintf(w, "  Door mix 0.75 m / 1.00 m:\t%.0f%% / %.0f%%\n", pct075*100, pct1m*100)
	w.Flush()
	fmt.Println()
}
