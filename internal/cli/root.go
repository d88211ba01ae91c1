// Package cli implements the cubedsphere command-line tool: neighbor and
// slice queries, a verification sweep over the reversibility law, and an
// introspection HTTP server, one Cobra command per file.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubedsphere",
	Short: "Cubed-sphere domain-decomposition toolkit",
	Long: `cubedsphere answers topology queries over a cubed-sphere rank space
(which remote rank owns my neighboring sub-tile, and how rotated is its
frame?) and boundary-slice queries over an array descriptor (which index
region is my halo of N points along a given direction?).`,
	Version: "1.0.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(neighborCmd)
	rootCmd.AddCommand(sliceCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}
