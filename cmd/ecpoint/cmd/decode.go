package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coinbase/ecpoint-go/pkg/ecpoint/logging"
)

func decodeCmd(e *env) *cobra.Command {
	var curveName string

	cmd := &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode an uncompressed point",
		Long:  `Decodes a hex-encoded 0x04 | X | Y point and prints its coordinates. The point is not checked against the curve equation.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := e.codec.Registry().Resolve(curveName)
			if err != nil {
				return err
			}
			buf, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}
			p, err := e.codec.Decode(buf, id)
			if err != nil {
				e.logger.Warn(cmd.Context(), "point rejected", "curve", id.String(), logging.Redacted("input"), "error", err)
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "curve %s\n", p.Curve)
			fmt.Fprintf(out, "x     0x%s\n", p.X.Text(16))
			fmt.Fprintf(out, "y     0x%s\n", p.Y.Text(16))
			return nil
		},
	}
	cmd.Flags().StringVar(&curveName, "curve", "secp256r1", "TLS curve name")
	return cmd
}
