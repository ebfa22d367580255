package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/collapse"
)

var defaultHeights = []string{"50", "100", "200", "400", "800", "1600"}

func newDurationCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration [heights...]",
		Short: "Print the auto duration picked for each content height",
		Example: `  collapsed duration 120 480
  collapsed duration --base-height 40 300`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultHeights
			}

			base := a.v.GetFloat64("base-height")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "HEIGHT\tDELTA\tDURATION")

			for _, arg := range args {
				height, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid height %q: %w", arg, err)
				}

				delta := height - base
				fmt.Fprintf(w, "%gpx\t%gpx\t%dms\n", height, delta, collapse.AutoDuration(delta))
			}

			return w.Flush()
		},
	}

	cmd.Flags().Float64("base-height", 0, "Collapsed height the transition starts from")

	return cmd
}
