package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/offcalc/cmd/chain"
)

func (a *app) chainCmd() *cobra.Command {
	var diameter float64

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Breaking strength and dry weight of mooring chain",
		Long: `Breaking strength (MBL) and dry weight per metre of an offshore mooring
chain per DNVGL-OS-E302. Quality is one of R3, R3S, R4, R4S or R5.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quality := a.cfg.GetString(keyChainQuality)
			stud := a.cfg.GetBool(keyChainStud)
			loggerFromContext(cmd.Context()).Debug("chain", "quality", quality, "stud", stud, "diameter_mm", diameter)

			c, err := chain.New(quality, stud)
			if err != nil {
				return err
			}
			d := diameter / 1000
			mbl, err := c.BreakingStrength(d)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("chain breaking strength", "chain", c.String(), "mbl_kN", mbl/1000)
			fmt.Fprintln(cmd.OutOrStdout(), chain.View(c, d))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&diameter, "diameter", "d", 0, "nominal chain diameter (mm)")
	cmd.Flags().StringP("quality", "q", "R3", "chain quality (R3, R3S, R4, R4S, R5)")
	cmd.Flags().Bool("stud", false, "studded chain (default studless)")
	_ = cmd.MarkFlagRequired("diameter")
	_ = a.cfg.BindPFlag(keyChainQuality, cmd.Flags().Lookup("quality"))
	_ = a.cfg.BindPFlag(keyChainStud, cmd.Flags().Lookup("stud"))
	return cmd
}
