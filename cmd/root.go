package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"     // set via -ldflags "-X github.com/sumwatshade/offcalc/cmd.version=..."
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// Config keys shared by flags, the config file and OFFCALC_* env vars.
const (
	keyScalingDiameter = "scaling.diameter"
	keyChainQuality    = "chain.quality"
	keyChainStud       = "chain.stud"
	keySweepPoints     = "sweep.points"
	keySweepWidth      = "sweep.width"
	keySweepHeight     = "sweep.height"
)

// app carries the state shared by every command of one invocation.
type app struct {
	cfg     *viper.Viper
	cfgFile string
	verbose bool
}

func newApp() *app {
	v := viper.New()
	v.SetDefault(keyScalingDiameter, 60.0)
	v.SetDefault(keyChainQuality, "R3")
	v.SetDefault(keyChainStud, false)
	v.SetDefault(keySweepPoints, 12)
	v.SetDefault(keySweepWidth, 60)
	v.SetDefault(keySweepHeight, 14)
	return &app{cfg: v}
}

// newRootCmd builds the command tree. Every call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := newApp()

	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:   "offcalc",
		Short: "Engineering calculators for offshore floating structures",
		Long: `Estimates the heave natural period of cylinders and barges, the strength
and weight of mooring chain, Froude-scaled model test statistics, and converts
text to and from hex.

Run without a subcommand to open the interactive calculator.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			if err := a.initConfig(logger); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(initialModel(a), tea.WithAltScreen())

			_, err := p.Run()

			return err
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("offcalc %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.offcalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(a.periodCmd())
	rootCmd.AddCommand(a.chainCmd())
	rootCmd.AddCommand(a.hexCmd())
	rootCmd.AddCommand(a.scaleCmd())
	rootCmd.AddCommand(a.sweepCmd())

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig(logger *charmlog.Logger) error {
	v := a.cfg
	if a.cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(a.cfgFile)
	} else {
		// Search config in home directory with name ".offcalc" (without extension).
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".offcalc")
	}

	v.SetEnvPrefix("OFFCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match

	err := v.ReadInConfig()
	switch {
	case err == nil:
		logger.Debug("using config file", "path", v.ConfigFileUsed())
	case a.cfgFile != "":
		// an explicitly requested file must exist and parse
		return fmt.Errorf("read config %s: %w", filepath.Clean(a.cfgFile), err)
	default:
		logger.Debug("no config file found, using defaults")
	}
	return nil
}
