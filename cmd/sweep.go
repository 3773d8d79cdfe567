package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/offcalc/cmd/floater"
	"github.com/sumwatshade/offcalc/cmd/sweep"
)

func (a *app) sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Chart the heave natural period over a range of one dimension",
	}
	cmd.PersistentFlags().Int("points", 12, "number of evaluated points")
	cmd.PersistentFlags().Int("width", 60, "chart width (columns)")
	cmd.PersistentFlags().Int("height", 14, "chart height (rows)")
	_ = a.cfg.BindPFlag(keySweepPoints, cmd.PersistentFlags().Lookup("points"))
	_ = a.cfg.BindPFlag(keySweepWidth, cmd.PersistentFlags().Lookup("width"))
	_ = a.cfg.BindPFlag(keySweepHeight, cmd.PersistentFlags().Lookup("height"))

	cmd.AddCommand(a.sweepCylinderCmd())
	cmd.AddCommand(a.sweepBargeCmd())
	return cmd
}

func (a *app) sweepCylinderCmd() *cobra.Command {
	var mass, from, to float64

	cmd := &cobra.Command{
		Use:   "cylinder",
		Short: "Sweep the diameter of a cylinder of fixed mass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSweep(cmd, sweep.CylinderDiameter(mass), "diameter", from, to)
		},
	}
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass of the cylinder (t)")
	cmd.Flags().Float64Var(&from, "from", 0, "smallest diameter (m)")
	cmd.Flags().Float64Var(&to, "to", 0, "largest diameter (m)")
	for _, f := range []string{"mass", "from", "to"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) sweepBargeCmd() *cobra.Command {
	var (
		mass, from, to float64
		dims           floater.Dimensions
		vary           string
	)

	cmd := &cobra.Command{
		Use:   "barge",
		Short: "Sweep one dimension of a barge of fixed mass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			build, err := sweep.BargeDimension(mass, dims, vary)
			if err != nil {
				return err
			}
			return a.runSweep(cmd, build, vary, from, to)
		},
	}
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass of the barge (t)")
	cmd.Flags().Float64Var(&dims.Width, "width", 0, "beam (m)")
	cmd.Flags().Float64Var(&dims.Draft, "draft", 0, "draft (m)")
	cmd.Flags().Float64Var(&dims.Length, "length", 0, "length (m)")
	cmd.Flags().StringVar(&vary, "vary", "length", "dimension to sweep: width, draft or length")
	cmd.Flags().Float64Var(&from, "from", 0, "smallest value of the swept dimension (m)")
	cmd.Flags().Float64Var(&to, "to", 0, "largest value of the swept dimension (m)")
	for _, f := range []string{"mass", "from", "to"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) runSweep(cmd *cobra.Command, build sweep.Builder, label string, from, to float64) error {
	n := a.cfg.GetInt(keySweepPoints)
	pts, err := sweep.Run(build, from, to, n)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("sweep", "dimension", label, "from", from, "to", to, "points", n)
	fmt.Fprintln(cmd.OutOrStdout(), sweep.View(pts, label, a.cfg.GetInt(keySweepWidth), a.cfg.GetInt(keySweepHeight)))
	return nil
}
