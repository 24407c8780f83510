package cmd

import (
	"fmt"
	"io"

	"github.com/akmonengine/extent"
	"github.com/akmonengine/extent/volume"
	"github.com/spf13/cobra"
)

func newBoxCommand(out io.Writer) *cobra.Command {
	var (
		normalize bool
		precision int
	)

	cmd := &cobra.Command{
		Use:   "box <xmin,ymin,zmin,xmax,ymax,zmax>",
		Short: "Print a box and its derived state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBox(args[0], normalize)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "box: %s\n", b.ToString(precision))
			fmt.Fprintf(out, "state: %s\n", b.State())
			fmt.Fprintf(out, "2d: %t\n", b.Is2D())
			fmt.Fprintf(out, "3d: %t\n", b.Is3D())
			fmt.Fprintf(out, "size: %g x %g x %g\n", b.Width(), b.Height(), b.Depth())
			fmt.Fprintf(out, "volume: %g\n", b.Volume())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "swap inverted bounds")
	addPrecisionFlag(cmd.Flags(), &precision)
	return cmd
}

func newUnionCommand(out io.Writer) *cobra.Command {
	var (
		workers   int
		precision int
	)

	cmd := &cobra.Command{
		Use:   "union <box>...",
		Short: "Print the bounding box of several boxes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boxes := make([]volume.Box3D, 0, len(args))
			for _, arg := range args {
				b, err := parseBox(arg, false)
				if err != nil {
					return err
				}
				boxes = append(boxes, b)
			}

			fmt.Fprintln(out, extent.Combine(boxes, workers).ToString(precision))
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", extent.DEFAULT_WORKERS, "number of goroutines")
	addPrecisionFlag(cmd.Flags(), &precision)
	return cmd
}

func newDistanceCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <box> <x,y,z>",
		Short: "Print the distance from a point to a box",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBox(args[0], false)
			if err != nil {
				return err
			}
			p, err := parsePoint(args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%g\n", b.DistanceTo(p))
			return nil
		},
	}
}
