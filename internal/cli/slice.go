package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/earthmesh/cubedsphere/internal/direction"
	"github.com/earthmesh/cubedsphere/internal/quantity"
)

var sliceCmd = &cobra.Command{
	Use:   "slice",
	Short: "Compute a boundary halo region for an array descriptor",
	Long: `slice answers the boundary-slicing query: given an array descriptor
(dimension labels, origin, extent, buffer shape), a direction, a halo
width, and interior/exterior, it prints the resulting per-axis [lo, hi)
region.

Example:
  cubedsphere slice --dims Y_DIM,X_DIM --origin 1,1 --extent 1,1 \
    --shape 3,3 --direction WEST --points 1 --interior`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dimsStr, _ := cmd.Flags().GetString("dims")
		originStr, _ := cmd.Flags().GetString("origin")
		extentStr, _ := cmd.Flags().GetString("extent")
		shapeStr, _ := cmd.Flags().GetString("shape")
		dirStr, _ := cmd.Flags().GetString("direction")
		nPoints, _ := cmd.Flags().GetInt("points")
		interior, _ := cmd.Flags().GetBool("interior")

		dimTokens := strings.Split(dimsStr, ",")
		dims := make([]direction.DimLabel, len(dimTokens))
		for i, tok := range dimTokens {
			l, err := direction.ParseDimLabel(tok)
			if err != nil {
				return err
			}
			dims[i] = l
		}
		origin, err := parseIntCSV(originStr)
		if err != nil {
			return err
		}
		extent, err := parseIntCSV(extentStr)
		if err != nil {
			return err
		}
		shape, err := parseIntCSV(shapeStr)
		if err != nil {
			return err
		}
		dir, err := direction.Parse(dirStr)
		if err != nil {
			return err
		}

		desc, err := quantity.NewDescriptor(dims, origin, extent, shape)
		if err != nil {
			return err
		}
		region, err := quantity.BoundarySlice(desc, dir, nPoints, interior)
		if err != nil {
			return err
		}

		parts := make([]string, len(region))
		for i, interval := range region {
			parts[i] = fmt.Sprintf("[%d,%d)", interval.Lo, interval.Hi)
		}
		fmt.Fprintln(os.Stdout, strings.Join(parts, " "))
		return nil
	},
}

func init() {
	sliceCmd.Flags().String("dims", "Y_DIM,X_DIM", "comma-separated dimension labels")
	sliceCmd.Flags().String("origin", "", "comma-separated per-axis origin")
	sliceCmd.Flags().String("extent", "", "comma-separated per-axis extent")
	sliceCmd.Flags().String("shape", "", "comma-separated per-axis buffer shape")
	sliceCmd.Flags().String("direction", "WEST", "boundary direction")
	sliceCmd.Flags().Int("points", 1, "halo width")
	sliceCmd.Flags().Bool("interior", false, "interior side (default exterior)")
}
