package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"moist_air_calc/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of moist_air_calc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moist_air_calc v%s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "build time: %s, commit: %s\n", version.BuildTime, version.GitCommit)
		},
	}
}
