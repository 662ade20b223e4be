package chart

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// DrawASCII renders the total cost curve for the terminal.
func (cc *CostCurve) DrawASCII() string {
	if len(cc.Total) == 0 {
		return ""
	}
	graph := asciigraph.Plot(cc.Total,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("Total cost (PLN) vs hall height %.2f m → %.2f m",
			cc.Heights[0], cc.Heights[len(cc.Heights)-1])),
	)
	return "\n" + graph + "\n"
}
