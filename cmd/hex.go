package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/offcalc/cmd/hexcodec"
)

func (a *app) hexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Convert text to and from hexadecimal",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode <text>",
		Short: "Hex encode the UTF-8 bytes of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), hexcodec.Encode(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode hexadecimal back to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hexcodec.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	})

	return cmd
}
