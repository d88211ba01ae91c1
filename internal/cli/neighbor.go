package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/earthmesh/cubedsphere/internal/direction"
	"github.com/earthmesh/cubedsphere/internal/partition"
)

var neighborCmd = &cobra.Command{
	Use:   "neighbor",
	Short: "Look up the neighbor across a boundary direction",
	Long: `neighbor answers a single topology query: given a layout, a global
rank, and a boundary direction, which remote rank owns the neighboring
sub-tile, and by how many clockwise quarter turns is its frame rotated?

Examples:
  cubedsphere neighbor --layout 3x3 --rank 0 --direction WEST
  cubedsphere neighbor --layout 2x2 --rank 2 --direction NORTHWEST`,
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutStr, _ := cmd.Flags().GetString("layout")
		rank, _ := cmd.Flags().GetInt("rank")
		dirStr, _ := cmd.Flags().GetString("direction")

		rows, cols, err := parseLayoutFlag(layoutStr)
		if err != nil {
			return err
		}
		layout, err := partition.NewLayout(rows, cols)
		if err != nil {
			return err
		}
		dir, err := direction.Parse(dirStr)
		if err != nil {
			return err
		}

		p := partition.NewCubedSpherePartitioner(partition.NewTilePartitioner(layout))
		rec, ok, err := p.Boundary(dir, rank)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stdout, "absent")
			return nil
		}
		fmt.Fprintln(os.Stdout, rec.String())
		return nil
	},
}

func init() {
	neighborCmd.Flags().String("layout", "1x1", "per-face sub-tile grid, RxC")
	neighborCmd.Flags().Int("rank", 0, "global rank to query")
	neighborCmd.Flags().String("direction", "WEST", "boundary direction")
}
