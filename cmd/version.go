package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gostor/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gostor",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gostor v%s\n", version.Version)
		fmt.Println("Self-Storage Partition Cost Estimator")
		fmt.Printf("Build time: %s, commit: %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
