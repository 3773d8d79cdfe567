package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/offcalc/cmd/scaling"
)

func (a *app) scaleCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Froude scale model test statistics to full scale",
		Long: `Scales max, min, standard deviation and mean of the reference model test
channels to the full scale unit with the given waterline diameter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.cfg.GetFloat64(keyScalingDiameter)
			rows, err := scaling.Scale(scaling.DefaultChannels(), d)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("scaled channels", "diameter", d, "channels", len(rows))
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), scaling.RenderPlain(rows))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), scaling.Render(rows))
			return nil
		},
	}
	cmd.Flags().Float64P("diameter", "d", 60, "full scale waterline diameter (m)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print fixed width text instead of a table")
	_ = a.cfg.BindPFlag(keyScalingDiameter, cmd.Flags().Lookup("diameter"))
	return cmd
}
