package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func curvesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the enabled named curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := e.codec.Registry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGROUP\tWIDTH\tENCODED")
			for _, id := range reg.Supported() {
				width, err := reg.ByteWidth(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", id, id.NamedGroup(), width, 1+2*width)
			}
			return w.Flush()
		},
	}
}
