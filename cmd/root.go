package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// NewRootCommand builds the extent command tree writing its output to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "extent",
		Short: "Inspect axis-aligned and oriented 3D boxes",
		Long: `extent evaluates 3D bounding boxes from the command line.

Values are given as comma separated lists. Put "--" before arguments starting
with a minus sign so that they are not read as flags.`,
		SilenceUsage: true,
	}

	goFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(goFlags)

	rootCmd.AddCommand(
		newBoxCommand(out),
		newUnionCommand(out),
		newDistanceCommand(out),
		newCornersCommand(out),
	)
	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() {
	defer klog.Flush()
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		klog.Flush()
		os.Exit(1)
	}
}

func addPrecisionFlag(fs *pflag.FlagSet, precision *int) {
	fs.IntVarP(precision, "precision", "p", -1, "decimal digits, negative derives them from the box size")
}
