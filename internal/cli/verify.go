package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/earthmesh/cubedsphere/internal/direction"
	"github.com/earthmesh/cubedsphere/internal/partition"
)

var cornerDirections = []direction.Direction{
	direction.Northwest, direction.Northeast, direction.Southwest, direction.Southeast,
}

var edgeDirections = []direction.Direction{
	direction.West, direction.East, direction.North, direction.South,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the reversibility law over every rank and direction",
	Long: `verify runs the pairing law over every rank and direction for the
given layout: crossing a boundary and crossing back via the appropriately
rotated reverse direction must return to the origin rank with rotations
summing to 0 mod 4. It prints every violation it finds and fails with
their count, or prints "ok" if the layout passes.

Example:
  cubedsphere verify --layout 3x3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutStr, _ := cmd.Flags().GetString("layout")
		rows, cols, err := parseLayoutFlag(layoutStr)
		if err != nil {
			return err
		}
		layout, err := partition.NewLayout(rows, cols)
		if err != nil {
			return err
		}
		p := partition.NewCubedSpherePartitioner(partition.NewTilePartitioner(layout))

		violations := 0
		for rank := 0; rank < p.TotalRanks(); rank++ {
			for _, d := range append(append([]direction.Direction{}, edgeDirections...), cornerDirections...) {
				if err := checkReversibility(p, d, rank); err != nil {
					fmt.Fprintln(os.Stdout, err)
					violations++
				}
			}
		}
		if violations == 0 {
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		}
		return fmt.Errorf("%d reversibility violations found", violations)
	},
}

func checkReversibility(p partition.CubedSpherePartitioner, d direction.Direction, rank int) error {
	out, ok, err := p.Boundary(d, rank)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	reverseDir, err := direction.RotateClockwise(d, 2-out.NClockwiseRotations)
	if err != nil {
		return err
	}
	in, ok, err := p.Boundary(reverseDir, out.ToRank)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("rank=%d dir=%v: reverse boundary(%v, %d) unexpectedly absent", rank, d, reverseDir, out.ToRank)
	}
	if in.ToRank != rank {
		return fmt.Errorf("rank=%d dir=%v: reverse to_rank=%d, want %d", rank, d, in.ToRank, rank)
	}
	if (in.NClockwiseRotations+out.NClockwiseRotations)%4 != 0 {
		return fmt.Errorf("rank=%d dir=%v: rotations %d + %d not 0 mod 4", rank, d, out.NClockwiseRotations, in.NClockwiseRotations)
	}
	return nil
}

func init() {
	verifyCmd.Flags().String("layout", "3x3", "per-face sub-tile grid, RxC")
}
