package cmd

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/coinbase/ecpoint-go/pkg/ecpoint"
)

func encodeCmd(e *env) *cobra.Command {
	var curveName string

	cmd := &cobra.Command{
		Use:   "encode X Y",
		Short: "Encode coordinates as an uncompressed point",
		Long:  `Encodes X and Y (decimal, or hex with a 0x prefix) as a hex 0x04 | X | Y point.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := e.codec.Registry().Resolve(curveName)
			if err != nil {
				return err
			}
			x, err := parseCoord("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseCoord("y", args[1])
			if err != nil {
				return err
			}
			wire, err := e.codec.Encode(ecpoint.NewPoint(id, x, y))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(wire))
			return nil
		},
	}
	cmd.Flags().StringVar(&curveName, "curve", "secp256r1", "TLS curve name")
	return cmd
}

func parseCoord(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid %s coordinate %q", name, s)
	}
	return v, nil
}
