package cmd

import (
	"fmt"
	"io"

	"github.com/akmonengine/extent/volume"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCornersCommand(out io.Writer) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "corners <cx,cy,cz> <9 row-major half-axis values>",
		Short: "Print the corners and extent of an oriented box",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			center, err := parseFloats(args[0], 3)
			if err != nil {
				return errors.Wrap(err, "invalid center")
			}
			halfAxes, err := parseFloats(args[1], 9)
			if err != nil {
				return errors.Wrap(err, "invalid half axes")
			}

			box := volume.NewOrientedBox3DFromSlices(center, halfAxes)
			for i, c := range box.Corners() {
				fmt.Fprintf(out, "%d: %g,%g,%g\n", i, c.X(), c.Y(), c.Z())
			}
			fmt.Fprintf(out, "extent: %s\n", box.Extent().ToString(precision))
			return nil
		},
	}

	addPrecisionFlag(cmd.Flags(), &precision)
	return cmd
}
