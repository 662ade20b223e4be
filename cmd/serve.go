package cmd

import (
	"os"

	"github.com/alexiusacademia/gostor/internal/estimator"
	"github.com/alexiusacademia/gostor/internal/server"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cost model as a JSON API",
	Long: `Start a JSON API exposing the cost model.

Endpoints:
  POST /estimate     {"pum": 130, "height": 2.7, "pct_door_075": 0.6, "pct_door_1m": 0.4}
  POST /sensitivity  {"pum": 130, "height_high": 3.0, "height_low": 2.5}

Omitted door mix shares default to 50/50; omitted sensitivity heights
default to 3.0 m vs 2.5 m. Validation failures return 400 with a JSON
error body.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to $PORT, then 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	port := servePort
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	srv := server.New(estimator.NewDefault())
	return srv.ListenAndServe(port)
}
