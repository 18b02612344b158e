package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resolveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME",
		Short: "Resolve a TLS curve name to its field width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := e.codec.Registry()
			id, err := reg.Resolve(args[0])
			if err != nil {
				return err
			}
			width, err := reg.ByteWidth(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s group=%d width=%d\n", id, id.NamedGroup(), width)
			return nil
		},
	}
}
